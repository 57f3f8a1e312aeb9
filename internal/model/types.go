package model

// Category tags an activity with what kind of stop it is. The set is open;
// unknown values are displayed with a fallback style.
type Category string

const (
	CategoryTransport   Category = "transport"
	CategoryFood        Category = "food"
	CategoryCulture     Category = "culture"
	CategoryAttraction  Category = "attraction"
	CategoryNature      Category = "nature"
	CategorySightseeing Category = "sightseeing"
	CategoryStart       Category = "start"
	CategoryDeparture   Category = "departure"
	CategoryHotel       Category = "hotel"
	CategoryPhoto       Category = "photo"
)

// Activity is a single scheduled item within a day.
type Activity struct {
	Time             string // time of day as authored, e.g. "20:30"
	Description      string
	Cost             float64 // base currency; zero means no direct cost
	Category         Category
	GroupCost        bool // Cost is for the whole group rather than per person
	Location         string
	PreviousLocation string
	Details          string
	Note             string
}

// Accommodation is where the group sleeps at the end of a day.
type Accommodation struct {
	Name     string
	Type     string
	Rating   float64 // 0-5
	Price    float64 // total for the stay, base currency
	Features []string
	Location string
	CheckIn  string
	CheckOut string
	Nights   int
}

// Travel summarizes how the group moves around on a day.
type Travel struct {
	Route        string
	Method       string
	Duration     string
	Cost         string
	Instructions string
}

// Day is one calendar day of the itinerary.
type Day struct {
	ID            int
	Date          string // e.g. "September 25, 2025"
	Area          string
	Title         string
	Description   string
	Activities    []Activity
	Accommodation *Accommodation
	Highlights    []string
	TotalCost     float64 // base currency
	GroupCost     bool
	Travel        *Travel
	Tips          []string
}

// Trip holds facts about the journey as a whole.
type Trip struct {
	Name      string
	Tagline   string
	GroupSize int
	Cities    []string
}

// RouteLeg is one inter-city hop shown on the journey overview.
type RouteLeg struct {
	Day      string
	From     string
	To       string
	Method   string
	Duration string
}

// BudgetLine is one category of the budget breakdown.
type BudgetLine struct {
	Category   string
	Percentage int
	Amount     float64
}

// PaymentItem is a booking that has been paid or still needs paying.
type PaymentItem struct {
	Name   string
	Amount float64
	Status string
}

// Budget holds the author-supplied spending estimate. All amounts are in
// the base currency.
type Budget struct {
	Total          float64
	PerPerson      float64
	PerDay         float64
	Breakdown      []BudgetLine
	Paid           []PaymentItem
	Unpaid         []PaymentItem
	PaidTotal      float64
	UnpaidTotal    float64
	PaidPercentage int
}

// DayRow is a day read back from a snapshot export.
type DayRow struct {
	ID            int
	Date          string
	Area          string
	Title         string
	TotalCost     float64
	GroupCost     bool
	ActivityCount int
	Accommodation string
}
