package consultation

// Duration is the length of a consultation session in minutes.
type Duration int

const (
	DurationQuarter Duration = 15
	DurationHalf    Duration = 30
	DurationHour    Duration = 60
	DurationDouble  Duration = 120
)

func (d Duration) Minutes() int {
	return int(d)
}

func (d Duration) IsValid() bool {
	switch d {
	case DurationQuarter, DurationHalf, DurationHour, DurationDouble:
		return true
	default:
		return false
	}
}

// CategoryName is one of the fixed consultation categories offered by the firm.
type CategoryName string

const (
	CategoryFelonies             CategoryName = "Felonies"
	CategoryMisdemeanors         CategoryName = "Misdemeanors"
	CategoryImmigration          CategoryName = "Immigration"
	CategoryPropertyManagement   CategoryName = "Property Management"
	CategoryFamilyLaw            CategoryName = "Family Law"
	CategoryCommercialLaw        CategoryName = "Commercial Law"
	CategoryLaborLaw             CategoryName = "Labor Law"
	CategoryTaxConsulting        CategoryName = "Tax Consulting"
	CategoryContracts            CategoryName = "Contracts"
	CategoryIntellectualProperty CategoryName = "Intellectual Property"
)

var categoryNames = map[CategoryName]struct{}{
	CategoryFelonies:             {},
	CategoryMisdemeanors:         {},
	CategoryImmigration:          {},
	CategoryPropertyManagement:   {},
	CategoryFamilyLaw:            {},
	CategoryCommercialLaw:        {},
	CategoryLaborLaw:             {},
	CategoryTaxConsulting:        {},
	CategoryContracts:            {},
	CategoryIntellectualProperty: {},
}

func (n CategoryName) String() string {
	return string(n)
}

func (n CategoryName) IsValid() bool {
	_, ok := categoryNames[n]
	return ok
}
