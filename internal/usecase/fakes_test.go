package usecase

import (
	"context"
	"fmt"
	"strconv"

	"souqly/internal/domain/entity"
	"souqly/internal/domain/repository"
	"souqly/pkg/errors"
)

// In-memory repository fakes. Each keeps a flat map and a counter for IDs;
// failure injection goes through the err fields.

type fakeListingRepo struct {
	listings  map[string]*entity.Listing
	pages     []*repository.ListingPage
	lastQ     repository.ListingQuery
	updateErr error
}

func newFakeListingRepo() *fakeListingRepo {
	return &fakeListingRepo{listings: make(map[string]*entity.Listing)}
}

func (f *fakeListingRepo) Create(ctx context.Context, listing *entity.Listing) error {
	if listing.ID == "" {
		listing.ID = "listing-" + strconv.Itoa(len(f.listings)+1)
	}
	f.listings[listing.ID] = listing
	return nil
}

func (f *fakeListingRepo) GetByID(ctx context.Context, id string) (*entity.Listing, error) {
	listing, ok := f.listings[id]
	if !ok {
		return nil, errors.NotFound("Listing", nil)
	}
	return listing, nil
}

func (f *fakeListingRepo) ListPage(ctx context.Context, query repository.ListingQuery) (*repository.ListingPage, error) {
	f.lastQ = query
	if len(f.pages) == 0 {
		return &repository.ListingPage{}, nil
	}
	page := f.pages[0]
	f.pages = f.pages[1:]
	return page, nil
}

func (f *fakeListingRepo) ListBySeller(ctx context.Context, sellerID, status string, limit, offset int) ([]*entity.Listing, int64, error) {
	var out []*entity.Listing
	for _, l := range f.listings {
		if l.SellerID != sellerID {
			continue
		}
		if status != "" && l.Status != status {
			continue
		}
		out = append(out, l)
	}
	return out, int64(len(out)), nil
}

func (f *fakeListingRepo) GetMany(ctx context.Context, ids []string) (map[string]*entity.Listing, error) {
	out := make(map[string]*entity.Listing)
	for _, id := range ids {
		if l, ok := f.listings[id]; ok {
			out[id] = l
		}
	}
	return out, nil
}

func (f *fakeListingRepo) Update(ctx context.Context, listing *entity.Listing) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.listings[listing.ID] = listing
	return nil
}

func (f *fakeListingRepo) UpdateStatus(ctx context.Context, id, status string) error {
	listing, ok := f.listings[id]
	if !ok {
		return errors.NotFound("Listing", nil)
	}
	listing.Status = status
	return nil
}

func (f *fakeListingRepo) Delete(ctx context.Context, id string) error {
	delete(f.listings, id)
	return nil
}

type fakeCartRepo struct {
	lines  map[string]*entity.CartLine
	nextID int
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{lines: make(map[string]*entity.CartLine)}
}

func (f *fakeCartRepo) Upsert(ctx context.Context, line *entity.CartLine) error {
	if line.ID == "" {
		f.nextID++
		line.ID = "line-" + strconv.Itoa(f.nextID)
	}
	copied := *line
	f.lines[line.ID] = &copied
	return nil
}

func (f *fakeCartRepo) GetLine(ctx context.Context, userID, lineID string) (*entity.CartLine, error) {
	line, ok := f.lines[lineID]
	if !ok || line.UserID != userID {
		return nil, errors.NotFound("Cart item", nil)
	}
	return line, nil
}

func (f *fakeCartRepo) FindByListing(ctx context.Context, userID, listingID string) (*entity.CartLine, error) {
	for _, line := range f.lines {
		if line.UserID == userID && line.ListingID == listingID {
			return line, nil
		}
	}
	return nil, nil
}

func (f *fakeCartRepo) ListByUser(ctx context.Context, userID string) ([]*entity.CartLine, error) {
	var out []*entity.CartLine
	for _, line := range f.lines {
		if line.UserID == userID {
			out = append(out, line)
		}
	}
	return out, nil
}

func (f *fakeCartRepo) UpdateQuantity(ctx context.Context, userID, lineID string, quantity int) error {
	line, ok := f.lines[lineID]
	if !ok || line.UserID != userID {
		return errors.NotFound("Cart item", nil)
	}
	line.Quantity = quantity
	return nil
}

func (f *fakeCartRepo) Remove(ctx context.Context, userID, lineID string) error {
	delete(f.lines, lineID)
	return nil
}

type fakeOrderRepo struct {
	orders   map[string]*entity.Order
	cart     *fakeCartRepo
	failWith error
}

func newFakeOrderRepo(cart *fakeCartRepo) *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*entity.Order), cart: cart}
}

func (f *fakeOrderRepo) CreateFromCart(ctx context.Context, order *entity.Order, cartLineIDs []string) error {
	if f.failWith != nil {
		// Atomic commit failed: neither the order nor the cart changes.
		return f.failWith
	}
	order.ID = fmt.Sprintf("order-%d", len(f.orders)+1)
	f.orders[order.ID] = order
	for _, id := range cartLineIDs {
		delete(f.cart.lines, id)
	}
	return nil
}

func (f *fakeOrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	order, ok := f.orders[id]
	if !ok {
		return nil, errors.NotFound("Order", nil)
	}
	return order, nil
}

func (f *fakeOrderRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.Order, int64, error) {
	var out []*entity.Order
	for _, order := range f.orders {
		if order.UserID == userID {
			out = append(out, order)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeOrderRepo) UpdateStatus(ctx context.Context, id, status string) error {
	order, ok := f.orders[id]
	if !ok {
		return errors.NotFound("Order", nil)
	}
	order.Status = status
	return nil
}

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	return user, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (f *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	f.users[user.ID] = user
	return nil
}

type fakeFavoriteRepo struct {
	favorites map[string]map[string]bool // userID -> listingID
	failWith  error
}

func newFakeFavoriteRepo() *fakeFavoriteRepo {
	return &fakeFavoriteRepo{favorites: make(map[string]map[string]bool)}
}

func (f *fakeFavoriteRepo) Add(ctx context.Context, userID, listingID string) error {
	if f.failWith != nil {
		return f.failWith
	}
	if f.favorites[userID] == nil {
		f.favorites[userID] = make(map[string]bool)
	}
	f.favorites[userID][listingID] = true
	return nil
}

func (f *fakeFavoriteRepo) Remove(ctx context.Context, userID, listingID string) error {
	if f.failWith != nil {
		return f.failWith
	}
	delete(f.favorites[userID], listingID)
	return nil
}

func (f *fakeFavoriteRepo) IsFavorite(ctx context.Context, userID, listingID string) (bool, error) {
	return f.favorites[userID][listingID], nil
}

func (f *fakeFavoriteRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]entity.FavoriteWithListing, int64, error) {
	var out []entity.FavoriteWithListing
	for listingID := range f.favorites[userID] {
		out = append(out, entity.FavoriteWithListing{ListingID: listingID, UserID: userID})
	}
	return out, int64(len(out)), nil
}

func (f *fakeFavoriteRepo) IDsByUser(ctx context.Context, userID string) (map[string]bool, error) {
	out := make(map[string]bool)
	for listingID := range f.favorites[userID] {
		out[listingID] = true
	}
	return out, nil
}

type fakeReviewRepo struct {
	reviews map[string]*entity.Review
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: make(map[string]*entity.Review)}
}

func (f *fakeReviewRepo) Create(ctx context.Context, review *entity.Review) error {
	if review.ID == "" {
		review.ID = "review-" + strconv.Itoa(len(f.reviews)+1)
	}
	f.reviews[review.ID] = review
	return nil
}

func (f *fakeReviewRepo) GetByID(ctx context.Context, id string) (*entity.Review, error) {
	review, ok := f.reviews[id]
	if !ok {
		return nil, errors.NotFound("Review", nil)
	}
	return review, nil
}

func (f *fakeReviewRepo) ListBySeller(ctx context.Context, sellerID string) ([]*entity.Review, error) {
	var out []*entity.Review
	for _, review := range f.reviews {
		if review.SellerID == sellerID {
			out = append(out, review)
		}
	}
	return out, nil
}

func (f *fakeReviewRepo) FindByBuyerAndListing(ctx context.Context, buyerID, listingID string) (*entity.Review, error) {
	for _, review := range f.reviews {
		if review.BuyerID == buyerID && review.ListingID == listingID {
			return review, nil
		}
	}
	return nil, nil
}

func (f *fakeReviewRepo) Delete(ctx context.Context, id string) error {
	delete(f.reviews, id)
	return nil
}

type fakeCategoryRepo struct{}

func (fakeCategoryRepo) List(ctx context.Context) ([]*entity.Category, error) {
	return []*entity.Category{{ID: "cat-1", Name: "Calculatrices"}}, nil
}
