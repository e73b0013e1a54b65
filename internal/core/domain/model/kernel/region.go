package kernel

import (
	"errors"
	"fmt"
	"sort"

	"dispatch/internal/pkg/guard"
)

// ErrUnknownRegion is the sentinel for region lookups that miss the table.
// Use errors.Is to classify; the concrete UnknownRegionError carries the
// offending name.
var ErrUnknownRegion = errors.New("unknown region")

// ErrRegionIsNotConstructed is returned when attempting to use an
// improperly initialized Region. Regions must be created via NewRegion.
var ErrRegionIsNotConstructed = errors.New("region must be created via NewRegion constructor")

// UnknownRegionError indicates that a region name is not part of the
// closed region table.
type UnknownRegionError struct {
	Name string
}

// NewUnknownRegionError creates an UnknownRegionError for the given name.
func NewUnknownRegionError(name string) *UnknownRegionError {
	return &UnknownRegionError{Name: name}
}

func (e *UnknownRegionError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownRegion, e.Name)
}

func (e *UnknownRegionError) Unwrap() error {
	return ErrUnknownRegion
}

// Region is a value object naming one entry of the closed region table.
// A constructed Region is guaranteed to resolve to coordinates.
//
// Example:
//
//	origin, err := kernel.NewRegion("Algiers")
//	if err != nil {
//	    // name is not in the table
//	}
//	point := origin.Coordinates()
type Region struct { //nolint:recvcheck //using for validation
	name  string
	guard guard.ConstructorGuard
}

// NewRegion creates a Region from its name.
// Fails with UnknownRegionError if the name is not in the region table.
func NewRegion(name string) (Region, error) {
	if _, ok := geoTable[name]; !ok {
		return Region{}, NewUnknownRegionError(name)
	}

	return Region{
		name:  name,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the Region was created via NewRegion.
// The zero value fails validation.
func (r Region) Validate() error {
	return r.guard.Validate(ErrRegionIsNotConstructed)
}

// Name returns the region's canonical name.
func (r Region) Name() string {
	return r.name
}

// String implements fmt.Stringer.
func (r Region) String() string {
	return r.name
}

// IsEqual compares two regions by name.
func (r Region) IsEqual(other Region) bool {
	return r.name == other.name
}

// Coordinates returns the geographic coordinate of the region.
// Guaranteed to succeed for a constructed Region.
func (r Region) Coordinates() GeoPoint {
	return geoTable[r.name]
}

// CoordinatesOf resolves a region name to its coordinate without
// constructing a Region. Fails with UnknownRegionError for names outside
// the table.
func CoordinatesOf(name string) (GeoPoint, error) {
	point, ok := geoTable[name]
	if !ok {
		return GeoPoint{}, NewUnknownRegionError(name)
	}
	return point, nil
}

// RegionNames returns all region names in lexical order.
// Intended for presentation layers populating selection lists.
func RegionNames() []string {
	names := make([]string, 0, len(geoTable))
	for name := range geoTable {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// geoTable is the process-wide constant mapping of region name to
// coordinate. Read-only after initialization, hence freely shared
// without locking.
var geoTable = map[string]GeoPoint{
	"Adrar":              {27.8742, -0.2939},
	"Chlef":              {36.1647, 1.3317},
	"Laghouat":           {33.8000, 2.8650},
	"Oum El Bouaghi":     {35.8775, 7.1135},
	"Batna":              {35.5559, 6.1741},
	"Bejaia":             {36.7509, 5.0567},
	"Biskra":             {34.8504, 5.7280},
	"Bechar":             {31.6167, -2.2167},
	"Blida":              {36.4701, 2.8277},
	"Bouira":             {36.3736, 3.9020},
	"Tamanrasset":        {22.7850, 5.5228},
	"Tebessa":            {35.4042, 8.1242},
	"Tlemcen":            {34.8828, -1.3167},
	"Tiaret":             {35.3712, 1.3170},
	"Tizi Ouzou":         {36.7118, 4.0459},
	"Algiers":            {36.7538, 3.0588},
	"Djelfa":             {34.6792, 3.2630},
	"Jijel":              {36.8190, 5.7667},
	"Setif":              {36.1911, 5.4137},
	"Saida":              {34.8303, 0.1517},
	"Skikda":             {36.8762, 6.9094},
	"Sidi Bel Abbes":     {35.1977, -0.6388},
	"Annaba":             {36.9000, 7.7667},
	"Guelma":             {36.4621, 7.4261},
	"Constantine":        {36.3650, 6.6147},
	"Medea":              {36.2675, 2.7500},
	"Mostaganem":         {35.9311, 0.0892},
	"M'Sila":             {35.7058, 4.5419},
	"Mascara":            {35.3968, 0.1402},
	"Ouargla":            {31.9493, 5.3249},
	"Oran":               {35.6969, -0.6331},
	"El Bayadh":          {33.6803, 1.0193},
	"Illizi":             {26.4833, 8.4667},
	"Bordj Bou Arreridj": {36.0731, 4.7608},
	"Boumerdes":          {36.7600, 3.4770},
	"El Tarf":            {36.7672, 8.3137},
	"Tindouf":            {27.6711, -8.1474},
	"Tissemsilt":         {35.6072, 1.8106},
	"El Oued":            {33.3683, 6.8675},
	"Khenchela":          {35.4358, 7.1433},
	"Souk Ahras":         {36.2863, 7.9511},
	"Tipaza":             {36.5892, 2.4483},
	"Mila":               {36.4503, 6.2644},
	"Ain Defla":          {36.2641, 1.9679},
	"Naama":              {33.2667, -0.3167},
	"Ain Temouchent":     {35.2977, -1.1405},
	"Ghardaia":           {32.4890, 3.6736},
	"Relizane":           {35.7373, 0.5558},
	"Timimoun":           {29.2639, 0.2306},
	"Bordj Badji Mokhtar": {21.3289, 0.9542},
	"Ouled Djellal":      {34.4178, 5.0644},
	"Beni Abbes":         {30.1333, -2.1667},
	"In Salah":           {27.1935, 2.4608},
	"In Guezzam":         {19.5686, 5.7722},
	"Touggourt":          {33.1000, 6.0667},
	"Djanet":             {24.5542, 9.4856},
	"El M'Ghair":         {33.9500, 5.9200},
	"El Meniaa":          {30.5789, 2.8786},
}
