package delivery

import (
	"errors"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

var (
	// ErrDeliveryIsNotConstructed is returned when a Delivery instance was
	// not created through the NewDelivery or RestoreDelivery factories.
	ErrDeliveryIsNotConstructed = errors.New(
		"Delivery must be created via NewDelivery or RestoreDelivery constructor")
)

// Delivery is the aggregate root for a delivery record. It owns the
// record's lifecycle from sender-initiated creation through driver
// acceptance to a terminal Delivered or Cancelled state.
//
// Invariants maintained by the aggregate:
//   - Route, package category, service tier, and sender identity are
//     immutable after construction; re-pricing requires a new record.
//   - The price quote is computed once at creation and never mutated.
//   - A driver reference exists exactly when the status requires one
//     (InTransit and Delivered; never Pending or Returned).
//   - Every status mutation refreshes the updated-at timestamp.
//   - Records are never deleted; terminal states are retained as history.
//
// Cross-record exclusivity (one active delivery per driver) cannot be
// seen from a single aggregate; the storage layer enforces it with a
// conditional update, and the aggregate only guarantees local legality.
type Delivery struct {
	id       kernel.UUID
	senderID kernel.UUID
	sender   Contact
	receiver Contact

	origin      kernel.Region
	destination kernel.Region
	category    PackageCategory
	tier        ServiceTier
	quote       Quote

	status   Status
	driverID *kernel.UUID

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewDelivery creates a new record in Pending status with no driver.
//
// The quote must come from the pricing engine; client-supplied price or
// distance values are recomputed server-side before this constructor is
// reached. Fails if the route violates the distance invariant (distinct
// regions with a non-positive distance).
func NewDelivery(
	id kernel.UUID,
	senderID kernel.UUID,
	sender Contact,
	receiver Contact,
	origin kernel.Region,
	destination kernel.Region,
	category PackageCategory,
	tier ServiceTier,
	quote Quote,
) (*Delivery, error) {
	now := time.Now().UTC()
	d := &Delivery{
		status:        StatusPending,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setSenderID(senderID),
		d.setSender(sender),
		d.setReceiver(receiver),
		d.setRoute(origin, destination),
		d.setCategory(category),
		d.setTier(tier),
		d.setQuote(quote),
	); err != nil {
		return nil, err
	}

	if err := d.validateRouteDistance(); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDelivery reconstructs a record from persistence, including its
// status, optional driver assignment, and timestamps. The status/driver
// consistency rule is re-checked so corrupt rows cannot become live
// aggregates.
func RestoreDelivery(
	id kernel.UUID,
	senderID kernel.UUID,
	sender Contact,
	receiver Contact,
	origin kernel.Region,
	destination kernel.Region,
	category PackageCategory,
	tier ServiceTier,
	quote Quote,
	status Status,
	driverID *kernel.UUID,
	createdAt time.Time,
	updatedAt time.Time,
) (*Delivery, error) {
	d := &Delivery{
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setSenderID(senderID),
		d.setSender(sender),
		d.setReceiver(receiver),
		d.setRoute(origin, destination),
		d.setCategory(category),
		d.setTier(tier),
		d.setQuote(quote),
		d.setStatus(status),
	); err != nil {
		return nil, err
	}

	if err := status.ValidateCanHaveDriver(driverID != nil); err != nil {
		return nil, err
	}

	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return nil, err
		}
		idCopy := *driverID
		d.driverID = &idCopy
	}

	return d, nil
}

// Validate ensures the Delivery instance was properly constructed.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

// IsEqual compares two deliveries by their unique identifiers.
func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the record's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// SenderID returns the identity of the sender who created the record.
func (d *Delivery) SenderID() kernel.UUID {
	return d.senderID
}

// Sender returns the sender's contact details.
func (d *Delivery) Sender() Contact {
	return d.sender
}

// Receiver returns the receiver's contact details.
func (d *Delivery) Receiver() Contact {
	return d.receiver
}

// Origin returns the pickup region.
func (d *Delivery) Origin() kernel.Region {
	return d.origin
}

// Destination returns the drop-off region.
func (d *Delivery) Destination() kernel.Region {
	return d.destination
}

// Category returns the package category.
func (d *Delivery) Category() PackageCategory {
	return d.category
}

// Tier returns the service tier.
func (d *Delivery) Tier() ServiceTier {
	return d.tier
}

// Quote returns the pricing result computed at creation.
func (d *Delivery) Quote() Quote {
	return d.quote
}

// Status returns the current lifecycle state.
func (d *Delivery) Status() Status {
	return d.status
}

// Driver returns the assigned driver's ID, or nil when unassigned.
func (d *Delivery) Driver() *kernel.UUID {
	return d.driverID
}

// CreatedAt returns the creation timestamp.
func (d *Delivery) CreatedAt() time.Time {
	return d.createdAt
}

// UpdatedAt returns the timestamp of the last status or assignment change.
func (d *Delivery) UpdatedAt() time.Time {
	return d.updatedAt
}

// IsAvailable reports whether the record belongs in the driver-facing
// backlog: Pending or Returned with no driver assigned.
func (d *Delivery) IsAvailable() bool {
	return d.status.IsAvailable() && d.driverID == nil
}

// Accept assigns the record to a driver and moves it to InTransit.
//
// Valid only for available records (Pending or Returned, no driver).
// The one-active-delivery-per-driver rule spans records and is enforced
// by the storage layer's conditional update; callers must persist the
// acceptance through it rather than an unconditional write.
func (d *Delivery) Accept(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	newStatus, err := d.status.Accept()
	if err != nil {
		return err
	}

	d.status = newStatus
	d.driverID = &driverID
	d.touch()
	return nil
}

// MarkDelivered records a successful delivery by the assigned driver.
//
// Only the assigned driver may complete a record; the driver reference
// is retained on the terminal record for history.
func (d *Delivery) MarkDelivered(actor Actor) error {
	if err := d.authorizeAssignedDriver(actor, "mark the delivery as delivered"); err != nil {
		return err
	}

	newStatus, err := d.status.Complete()
	if err != nil {
		return err
	}

	d.status = newStatus
	d.touch()
	return nil
}

// MarkReturned records that the assigned driver handed the package back.
//
// Clears the driver reference so the record reappears in the available
// backlog, keeping its Returned label until re-accepted.
func (d *Delivery) MarkReturned(actor Actor) error {
	if err := d.authorizeAssignedDriver(actor, "mark the delivery as returned"); err != nil {
		return err
	}

	newStatus, err := d.status.Return()
	if err != nil {
		return err
	}

	d.status = newStatus
	d.driverID = nil
	d.touch()
	return nil
}

// ForceReturn releases a stuck in-transit record back to the available
// backlog without the driver's cooperation. Administrative operation
// used by reconciliation when a driver went dark; the record takes the
// Returned label and loses its driver reference, exactly as if the
// driver had returned it.
func (d *Delivery) ForceReturn(actor Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	if !actor.IsAdmin() {
		return NewUnauthorizedError(actor, "force-return the delivery")
	}

	newStatus, err := d.status.Return()
	if err != nil {
		return err
	}

	d.status = newStatus
	d.driverID = nil
	d.touch()
	return nil
}

// Cancel terminally cancels the record.
//
// Allowed for the record's own sender and for administrators, on Pending
// or InTransit records. Drivers cannot cancel; they return instead.
func (d *Delivery) Cancel(actor Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	switch actor.Role() {
	case RoleAdmin:
		// admins may cancel any record
	case RoleSender:
		if !actor.ID().IsEqual(d.senderID) {
			return NewUnauthorizedError(actor, "cancel the delivery")
		}
	default:
		return NewUnauthorizedError(actor, "cancel the delivery")
	}

	newStatus, err := d.status.Cancel()
	if err != nil {
		return err
	}

	d.status = newStatus
	d.touch()
	return nil
}

// UpdateReceiver replaces the receiver contact details.
//
// Only the record's sender may edit, and only before pickup (Pending or
// Returned status).
func (d *Delivery) UpdateReceiver(actor Actor, receiver Contact) error {
	if err := errors.Join(actor.Validate(), receiver.Validate()); err != nil {
		return err
	}

	if actor.Role() != RoleSender || !actor.ID().IsEqual(d.senderID) {
		return NewUnauthorizedError(actor, "edit receiver details")
	}

	if !d.status.IsAvailable() {
		return errs.NewValueIsInvalidErrorWithCause(
			"receiver",
			fmt.Errorf("record in %s status is no longer editable", d.status),
		)
	}

	d.receiver = receiver
	d.touch()
	return nil
}

func (d *Delivery) authorizeAssignedDriver(actor Actor, action string) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	if actor.Role() != RoleDriver {
		return NewUnauthorizedError(actor, action)
	}

	// Unassigned records fall through to the transition check, which
	// rejects them with the more precise invalid-transition error.
	if d.driverID != nil && !actor.ID().IsEqual(*d.driverID) {
		return NewUnauthorizedError(actor, action)
	}

	return nil
}

func (d *Delivery) touch() {
	d.updatedAt = time.Now().UTC()
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setSenderID(senderID kernel.UUID) error {
	if err := senderID.Validate(); err != nil {
		return err
	}
	d.senderID = senderID
	return nil
}

func (d *Delivery) setSender(sender Contact) error {
	if err := sender.Validate(); err != nil {
		return err
	}
	d.sender = sender
	return nil
}

func (d *Delivery) setReceiver(receiver Contact) error {
	if err := receiver.Validate(); err != nil {
		return err
	}
	d.receiver = receiver
	return nil
}

func (d *Delivery) setRoute(origin, destination kernel.Region) error {
	if err := errors.Join(origin.Validate(), destination.Validate()); err != nil {
		return err
	}
	d.origin = origin
	d.destination = destination
	return nil
}

func (d *Delivery) setCategory(category PackageCategory) error {
	if err := category.Validate(); err != nil {
		return err
	}
	d.category = category
	return nil
}

func (d *Delivery) setTier(tier ServiceTier) error {
	if err := tier.Validate(); err != nil {
		return err
	}
	d.tier = tier
	return nil
}

func (d *Delivery) setQuote(quote Quote) error {
	if err := quote.Validate(); err != nil {
		return err
	}
	d.quote = quote
	return nil
}

func (d *Delivery) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	d.status = status
	return nil
}

func (d *Delivery) validateRouteDistance() error {
	if !d.origin.IsEqual(d.destination) && d.quote.DistanceKm() <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"distanceKm",
			fmt.Errorf("distance must be positive for distinct regions %s and %s", d.origin, d.destination),
		)
	}
	return nil
}
