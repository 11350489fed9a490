package handler

import (
	"net/url"
	"time"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// UserView is the public representation of an account. The password hash never leaves the server.
type UserView struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	ImageFile string    `json:"image_file"`
	CreatedAt time.Time `json:"created_at"`
}

func newUserView(user *entity.User) *UserView {
	return &UserView{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		ImageFile: user.ImageFile,
		CreatedAt: user.CreatedAt,
	}
}

type AccountView struct {
	User    *UserView `json:"user"`
	HasShop bool      `json:"has_shop"`
}

type LoginView struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      *UserView `json:"user"`
}

type ShopCountersView struct {
	TotalOrders      int `json:"total_orders"`
	TotalSales       int `json:"total_sales"`
	CancelledSales   int `json:"cancelled_sales"`
	ActiveListings   int `json:"active_listings"`
	InactiveListings int `json:"inactive_listings"`
	ExpiredListings  int `json:"expired_listings"`
	TimesFavorited   int `json:"times_favorited"`
	TimesViewed      int `json:"times_viewed"`
}

type AddressView struct {
	CompanyName     string  `json:"company_name"`
	StreetLine1     string  `json:"street_line1"`
	StreetLine2     string  `json:"street_line2,omitempty"`
	BuildingNumber  string  `json:"building_number,omitempty"`
	ApartmentNumber string  `json:"apartment_number,omitempty"`
	City            string  `json:"city"`
	Region          string  `json:"region"`
	ZipCode         string  `json:"zip_code"`
	CountryCode     string  `json:"country_code"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
}

type ContactView struct {
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// ShopView is a shop as shown on its public page. Address and contact are only present
// when the query loaded them.
type ShopView struct {
	ID           uuid.UUID        `json:"id"`
	OwnerID      uuid.UUID        `json:"owner_id"`
	Name         string           `json:"name"`
	URL          string           `json:"url"`
	Category     string           `json:"category"`
	Description  string           `json:"description"`
	ImageFile    string           `json:"image_file"`
	CoverImage   string           `json:"cover_image"`
	ResponseRate *float64         `json:"response_rate"`
	Counters     ShopCountersView `json:"counters"`
	CreatedAt    time.Time        `json:"created_at"`
	Address      *AddressView     `json:"address,omitempty"`
	Contact      *ContactView     `json:"contact,omitempty"`
}

// shopPath is the relative link of the public shop page.
func shopPath(name string) string {
	return "/shop/" + url.PathEscape(name)
}

func newShopView(shop *entity.Shop) *ShopView {
	view := &ShopView{
		ID:           shop.ID,
		OwnerID:      shop.OwnerID,
		Name:         shop.Name,
		URL:          shopPath(shop.Name),
		Category:     shop.Category.String(),
		Description:  shop.Description,
		ImageFile:    shop.ImageFile,
		CoverImage:   shop.CoverImage,
		ResponseRate: shop.ResponseRate,
		Counters:     ShopCountersView(shop.Counters),
		CreatedAt:    shop.CreatedAt,
	}
	if addr := shop.Address; addr != nil {
		view.Address = &AddressView{
			CompanyName:     addr.CompanyName,
			StreetLine1:     addr.Address.StreetLine1,
			StreetLine2:     addr.Address.StreetLine2,
			BuildingNumber:  addr.BuildingNumber,
			ApartmentNumber: addr.ApartmentNumber,
			City:            addr.Address.City,
			Region:          addr.Address.Region,
			ZipCode:         addr.Address.ZipCode,
			CountryCode:     addr.Address.CountryCode,
			Latitude:        addr.Coordinates.Latitude,
			Longitude:       addr.Coordinates.Longitude,
		}
	}
	if contact := shop.Contact; contact != nil {
		view.Contact = &ContactView{Email: contact.Email, Phone: contact.Phone}
	}

	return view
}

type ListingView struct {
	ID        uuid.UUID         `json:"id"`
	ShopID    uuid.UUID         `json:"shop_id"`
	Name      string            `json:"name"`
	Tags      []string          `json:"tags"`
	Images    map[string]string `json:"images"`
	CreatedAt time.Time         `json:"created_at"`
}

func newListingView(listing *entity.Listing) *ListingView {
	return &ListingView{
		ID:        listing.ID,
		ShopID:    listing.ShopID,
		Name:      listing.Name,
		Tags:      listing.Tags,
		Images:    listing.Images,
		CreatedAt: listing.CreatedAt,
	}
}

type PostView struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Author     string    `json:"author"`
	DatePosted time.Time `json:"date_posted"`
}

func newPostView(post *entity.Post) *PostView {
	return &PostView{
		ID:         post.ID,
		Title:      post.Title,
		Content:    post.Content,
		Author:     post.AuthorName,
		DatePosted: post.DatePosted,
	}
}

// PageView is one page of a listing together with navigation hints.
type PageView[T any] struct {
	Items   []T   `json:"items"`
	Page    int   `json:"page"`
	PerPage int   `json:"per_page"`
	Total   int64 `json:"total"`
	Pages   int   `json:"pages"`
	HasPrev bool  `json:"has_prev"`
	HasNext bool  `json:"has_next"`
}

func newPageView[E, V any](page *entity.Page[E], convert func(E) V) *PageView[V] {
	items := make([]V, 0, len(page.Items))
	for _, item := range page.Items {
		items = append(items, convert(item))
	}

	return &PageView[V]{
		Items:   items,
		Page:    page.Page,
		PerPage: page.PerPage,
		Total:   page.Total,
		Pages:   page.Pages(),
		HasPrev: page.HasPrev(),
		HasNext: page.HasNext(),
	}
}
