package usecase

import (
	"hotel-booking/internal/compare"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/queue"
	"hotel-booking/internal/wishlist"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth     AuthService
	User     UserService
	Hotel    HotelService
	Room     RoomService
	Booking  BookingService
	Payment  PaymentService
	Wishlist WishlistService
	Compare  CompareService
	Admin    AdminService
}

func NewService(
	repo *repository.Repository,
	wishlistStore wishlist.Store,
	publisher queue.Publisher,
	config *utils.Config,
	log *zap.Logger,
) *Service {
	return &Service{
		Auth:     NewAuthService(repo, config, log),
		User:     NewUserService(repo.User, log),
		Hotel:    NewHotelService(repo, log),
		Room:     NewRoomService(repo, log),
		Booking:  NewBookingService(repo, config, log),
		Payment:  NewPaymentService(repo, publisher, log),
		Wishlist: NewWishlistService(repo, wishlistStore, log),
		Compare:  NewCompareService(repo.RoomType, compare.NewRegistry(), log),
		Admin:    NewAdminService(repo, log),
	}
}
