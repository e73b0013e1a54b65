// Package delivery contains the delivery record aggregate and its
// supporting value objects: the status state machine, service tiers,
// package categories, actors, and price quotes.
//
// The aggregate is the single authority on lifecycle transitions. Every
// mutation goes through a method that consults the Status state machine
// and the acting party's authorization, so an illegal transition can
// never be expressed, only rejected.
package delivery
