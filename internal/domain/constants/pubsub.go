package constants

// Pub/Sub provider names accepted in pubsub.provider
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// RestaurantEventsSubscription is the subscription name announced by the local push publisher
const RestaurantEventsSubscription = "projects/local/subscriptions/restaurant-events-sub"
