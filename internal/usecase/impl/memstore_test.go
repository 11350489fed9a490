package impl

import (
	"context"
	"slices"
	"strings"
	"sync"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"

	"github.com/google/uuid"
)

// memStore is an in-memory stand-in for the PostgreSQL store. Transactions run one at a time
// against a copy of the data that replaces the committed state only when fn succeeds, and the
// storage-level unique constraints of the real schema are enforced on insert.
type memStore struct {
	mu   sync.Mutex
	data *memData
}

type memData struct {
	users     map[uuid.UUID]entity.User
	shops     map[uuid.UUID]entity.Shop
	addresses map[uuid.UUID]entity.CompanyAddress
	contacts  map[uuid.UUID]entity.Contact
	listings  []entity.Listing
	posts     []entity.Post
}

func newMemStore() *memStore {
	return &memStore{data: &memData{
		users:     map[uuid.UUID]entity.User{},
		shops:     map[uuid.UUID]entity.Shop{},
		addresses: map[uuid.UUID]entity.CompanyAddress{},
		contacts:  map[uuid.UUID]entity.Contact{},
	}}
}

func (d *memData) clone() *memData {
	cp := &memData{
		users:     make(map[uuid.UUID]entity.User, len(d.users)),
		shops:     make(map[uuid.UUID]entity.Shop, len(d.shops)),
		addresses: make(map[uuid.UUID]entity.CompanyAddress, len(d.addresses)),
		contacts:  make(map[uuid.UUID]entity.Contact, len(d.contacts)),
		listings:  slices.Clone(d.listings),
		posts:     slices.Clone(d.posts),
	}
	for k, v := range d.users {
		cp.users[k] = v
	}
	for k, v := range d.shops {
		cp.shops[k] = v
	}
	for k, v := range d.addresses {
		cp.addresses[k] = v
	}
	for k, v := range d.contacts {
		cp.contacts[k] = v
	}

	return cp
}

// access runs fn against the committed data, or against the transaction copy when tx is set.
type access func(fn func(d *memData) error) error

func (s *memStore) direct(fn func(d *memData) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return fn(s.data)
}

func (s *memStore) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := s.data.clone()
	bound := func(f func(d *memData) error) error { return f(tx) }
	if err := fn(&memFactory{at: bound}); err != nil {
		return err
	}
	s.data = tx

	return nil
}

func (s *memStore) users() *memUserRepo       { return &memUserRepo{at: s.direct} }
func (s *memStore) shops() *memShopRepo       { return &memShopRepo{at: s.direct} }
func (s *memStore) contacts() *memContactRepo { return &memContactRepo{at: s.direct} }
func (s *memStore) listings() *memListingRepo { return &memListingRepo{at: s.direct} }
func (s *memStore) posts() *memPostRepo       { return &memPostRepo{at: s.direct} }

func (s *memStore) snapshot() *memData {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.data.clone()
}

func (s *memStore) addUser(username, email string) entity.User {
	user := entity.User{ID: uuid.New(), Username: username, Email: email, ImageFile: entity.DefaultProfileImage}
	_ = s.direct(func(d *memData) error {
		d.users[user.ID] = user
		return nil
	})

	return user
}

type memFactory struct{ at access }

func (f *memFactory) NewUserRepository() repository.UserRepository { return &memUserRepo{at: f.at} }
func (f *memFactory) NewShopRepository() repository.ShopRepository { return &memShopRepo{at: f.at} }
func (f *memFactory) NewCompanyAddressRepository() repository.CompanyAddressRepository {
	return &memAddressRepo{at: f.at}
}
func (f *memFactory) NewContactRepository() repository.ContactRepository {
	return &memContactRepo{at: f.at}
}
func (f *memFactory) NewListingRepository() repository.ListingRepository {
	return &memListingRepo{at: f.at}
}

type memUserRepo struct{ at access }

func (r *memUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	var out *entity.User
	err := r.at(func(d *memData) error {
		u, ok := d.users[id]
		if !ok {
			return repository.ErrUserNotFound
		}
		out = &u
		return nil
	})

	return out, err
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	var out *entity.User
	err := r.at(func(d *memData) error {
		for _, u := range d.users {
			if u.Email == email {
				out = &u
				return nil
			}
		}
		return repository.ErrUserNotFound
	})

	return out, err
}

func (r *memUserRepo) LockByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return r.FindByID(ctx, id)
}

func (r *memUserRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	found := false
	err := r.at(func(d *memData) error {
		for _, u := range d.users {
			found = found || u.Username == username
		}
		return nil
	})

	return found, err
}

func (r *memUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	found := false
	err := r.at(func(d *memData) error {
		for _, u := range d.users {
			found = found || u.Email == email
		}
		return nil
	})

	return found, err
}

func (r *memUserRepo) Create(_ context.Context, user *entity.User) error {
	return r.at(func(d *memData) error {
		for _, u := range d.users {
			if u.Username == user.Username {
				return domainerrors.NewDuplicateError("username", "taken")
			}
			if u.Email == user.Email {
				return domainerrors.NewDuplicateError("email", "taken")
			}
		}
		d.users[user.ID] = *user
		return nil
	})
}

func (r *memUserRepo) Update(_ context.Context, user *entity.User) error {
	return r.at(func(d *memData) error {
		if _, ok := d.users[user.ID]; !ok {
			return repository.ErrUserNotFound
		}
		d.users[user.ID] = *user
		return nil
	})
}

type memShopRepo struct{ at access }

func (r *memShopRepo) Create(_ context.Context, shop *entity.Shop) error {
	return r.at(func(d *memData) error {
		for _, s := range d.shops {
			if s.OwnerID == shop.OwnerID {
				return domainerrors.ErrAlreadyHasShop.WrapMessage("shops_owner_id_key")
			}
			if strings.EqualFold(s.Name, shop.Name) {
				return domainerrors.NewDuplicateError("shop_name", "taken")
			}
		}
		stored := *shop
		stored.Address, stored.Contact = nil, nil
		d.shops[shop.ID] = stored
		return nil
	})
}

func (r *memShopRepo) hydrate(d *memData, s entity.Shop) *entity.Shop {
	if a, ok := d.addresses[s.ID]; ok {
		s.Address = &a
	}
	if c, ok := d.contacts[s.ID]; ok {
		s.Contact = &c
	}

	return &s
}

func (r *memShopRepo) FindByOwner(_ context.Context, ownerID uuid.UUID) (*entity.Shop, error) {
	var out *entity.Shop
	err := r.at(func(d *memData) error {
		for _, s := range d.shops {
			if s.OwnerID == ownerID {
				out = r.hydrate(d, s)
				return nil
			}
		}
		return repository.ErrShopNotFound
	})

	return out, err
}

func (r *memShopRepo) FindAllByName(_ context.Context, name string) ([]*entity.Shop, error) {
	var out []*entity.Shop
	err := r.at(func(d *memData) error {
		for _, s := range d.shops {
			if strings.EqualFold(s.Name, name) {
				out = append(out, r.hydrate(d, s))
			}
		}
		return nil
	})

	return out, err
}

func (r *memShopRepo) ExistsByOwner(ctx context.Context, ownerID uuid.UUID) (bool, error) {
	_, err := r.FindByOwner(ctx, ownerID)
	if err == repository.ErrShopNotFound {
		return false, nil
	}

	return err == nil, err
}

func (r *memShopRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	shops, err := r.FindAllByName(ctx, name)

	return len(shops) > 0, err
}

func (r *memShopRepo) List(_ context.Context, offset, limit int) ([]*entity.Shop, int64, error) {
	var all []entity.Shop
	_ = r.at(func(d *memData) error {
		for _, s := range d.shops {
			all = append(all, s)
		}
		return nil
	})
	slices.SortFunc(all, func(a, b entity.Shop) int { return strings.Compare(a.Name, b.Name) })

	var out []*entity.Shop
	for i := offset; i < len(all) && i < offset+limit; i++ {
		out = append(out, &all[i])
	}

	return out, int64(len(all)), nil
}

func (r *memShopRepo) ListMapPins(_ context.Context) ([]*entity.MapPin, error) {
	var out []*entity.MapPin
	err := r.at(func(d *memData) error {
		for _, s := range d.shops {
			a, ok := d.addresses[s.ID]
			if !ok {
				continue
			}
			out = append(out, &entity.MapPin{ShopID: s.ID, Name: s.Name, Category: s.Category, Description: s.Description, Coordinates: a.Coordinates})
		}
		return nil
	})

	return out, err
}

func (r *memShopRepo) AdjustActiveListings(_ context.Context, shopID uuid.UUID, delta int) error {
	return r.at(func(d *memData) error {
		s, ok := d.shops[shopID]
		if !ok {
			return repository.ErrShopNotFound
		}
		s.Counters.ActiveListings += delta
		d.shops[shopID] = s
		return nil
	})
}

type memAddressRepo struct{ at access }

func (r *memAddressRepo) Create(_ context.Context, address *entity.CompanyAddress) error {
	return r.at(func(d *memData) error {
		d.addresses[address.ShopID] = *address
		return nil
	})
}

type memContactRepo struct{ at access }

func (r *memContactRepo) Create(_ context.Context, contact *entity.Contact) error {
	return r.at(func(d *memData) error {
		for _, c := range d.contacts {
			if c.Email == contact.Email {
				return domainerrors.NewDuplicateError("email", "taken")
			}
		}
		d.contacts[contact.ShopID] = *contact
		return nil
	})
}

func (r *memContactRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	found := false
	err := r.at(func(d *memData) error {
		for _, c := range d.contacts {
			found = found || c.Email == email
		}
		return nil
	})

	return found, err
}

type memListingRepo struct{ at access }

func (r *memListingRepo) Create(_ context.Context, listing *entity.Listing) error {
	return r.at(func(d *memData) error {
		d.listings = append(d.listings, *listing)
		return nil
	})
}

func (r *memListingRepo) ListByShop(_ context.Context, shopID uuid.UUID, offset, limit int) ([]*entity.Listing, int64, error) {
	var all []entity.Listing
	_ = r.at(func(d *memData) error {
		for _, l := range d.listings {
			if l.ShopID == shopID {
				all = append(all, l)
			}
		}
		return nil
	})
	slices.Reverse(all)

	var out []*entity.Listing
	for i := offset; i < len(all) && i < offset+limit; i++ {
		out = append(out, &all[i])
	}

	return out, int64(len(all)), nil
}

type memPostRepo struct{ at access }

func (r *memPostRepo) Create(_ context.Context, post *entity.Post) error {
	return r.at(func(d *memData) error {
		d.posts = append(d.posts, *post)
		return nil
	})
}

func (r *memPostRepo) List(_ context.Context, offset, limit int) ([]*entity.Post, int64, error) {
	var all []entity.Post
	_ = r.at(func(d *memData) error {
		all = slices.Clone(d.posts)
		return nil
	})
	slices.SortStableFunc(all, func(a, b entity.Post) int { return b.DatePosted.Compare(a.DatePosted) })

	var out []*entity.Post
	for i := offset; i < len(all) && i < offset+limit; i++ {
		out = append(out, &all[i])
	}

	return out, int64(len(all)), nil
}
