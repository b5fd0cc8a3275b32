package flyer

type Category string

const (
	CategoryFood      Category = "food"
	CategoryGroceries Category = "groceries"
	CategoryEvents    Category = "events"
	CategoryMarkets   Category = "markets"
	CategoryCricket   Category = "cricket"
)

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryFood, CategoryGroceries, CategoryEvents, CategoryMarkets, CategoryCricket:
		return true
	default:
		return false
	}
}

type CategoryInfo struct {
	ID          Category
	Name        string
	Description string
}

// Categories is the fixed catalog shown to posters; order is display order.
var Categories = []CategoryInfo{
	{ID: CategoryFood, Name: "Food", Description: "Restaurants, home food, catering"},
	{ID: CategoryGroceries, Name: "Groceries", Description: "Indian stores, fresh produce"},
	{ID: CategoryEvents, Name: "Events", Description: "Cultural events, festivals, meetups"},
	{ID: CategoryMarkets, Name: "Markets", Description: "Bazaars, pop-up shops, vendors"},
	{ID: CategoryCricket, Name: "Cricket", Description: "Matches, tournaments, clubs"},
}

// ReactionKind is a closed set; free-form reaction strings never make it
// past the request DTO boundary.
type ReactionKind string

const (
	ReactionLikes ReactionKind = "likes"
	ReactionFire  ReactionKind = "fire"
	ReactionHeart ReactionKind = "heart"
)

func (k ReactionKind) String() string {
	return string(k)
}

func (k ReactionKind) IsValid() bool {
	switch k {
	case ReactionLikes, ReactionFire, ReactionHeart:
		return true
	default:
		return false
	}
}

// ExpiryStatus is derived at read time from the expiry date and the current
// time; it is never stored.
type ExpiryStatus string

const (
	StatusActive       ExpiryStatus = "active"
	StatusExpiringSoon ExpiryStatus = "expiring_soon"
	StatusExpired      ExpiryStatus = "expired"
)

func (s ExpiryStatus) String() string {
	return string(s)
}
