package handlers

import (
	businessRepo "pawhub/database/repository/business"
	userRepo "pawhub/database/repository/user"
)

// HandlerBundle aggregates every HTTP handler plus the repositories the
// auth middleware needs for token-hash fallback lookups.
type HandlerBundle struct {
	UserRepo     userRepo.UserRepository
	BusinessRepo businessRepo.BusinessRepository

	User     *UserHandler
	Business *BusinessHandler
	Booking  *BookingHandler
	Catalog  *CatalogHandler
	Storage  *StorageHandler
}
