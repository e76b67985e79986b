package handlers

// HandlerBundle groups all endpoint handlers into one struct for routing.
type HandlerBundle struct {
	Booking *BookingHandler
	Review  *ReviewHandler
	Service *ServiceHandler
}
