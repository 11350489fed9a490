package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"bazaar/internal/delivery/api/router/handler"
	"bazaar/internal/domain/entity"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDirectoryHandler_ListShops(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		wantPage int
	}{
		{name: "default page", target: "/shops", wantPage: 1},
		{name: "explicit page", target: "/shops?page=2", wantPage: 2},
		{name: "malformed page", target: "/shops?page=two", wantPage: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t)
			shops := []*entity.Shop{sampleShop(uuid.New())}
			ts.directory.EXPECT().ListShops(mock.Anything, tt.wantPage).
				Return(entity.NewPage(shops, tt.wantPage, 10, 11), nil)

			rec := ts.do(http.MethodGet, tt.target, "", "")

			require.Equal(t, http.StatusOK, rec.Code)
			page := decodeData[handler.PageView[handler.ShopView]](t, rec)
			require.Len(t, page.Items, 1)
			assert.Equal(t, "/shop/Tribe%20Zero", page.Items[0].URL)
			assert.Equal(t, 2, page.Pages)
			assert.Equal(t, tt.wantPage == 1, page.HasNext)
			assert.Equal(t, tt.wantPage == 2, page.HasPrev)
		})
	}
}

func TestDirectoryHandler_ListShops_PastLastPage(t *testing.T) {
	ts := newTestServer(t)
	ts.directory.EXPECT().ListShops(mock.Anything, 9).
		Return(entity.NewPage[*entity.Shop](nil, 9, 10, 3), nil)

	rec := ts.do(http.MethodGet, "/shops?page=9", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, string(rawField(t, decode(t, rec).Data, "items")))
}

func TestDirectoryHandler_Map_GeoJSONLongitudeFirst(t *testing.T) {
	ts := newTestServer(t)
	shopID := uuid.New()
	ts.directory.EXPECT().MapData(mock.Anything).Return(&usecase.MapOutput{
		APIKey: "browser-key",
		Pins: []*entity.MapPin{{
			ShopID:      shopID,
			Name:        "Tribe Zero",
			Category:    entity.ShopCategoryArt,
			Coordinates: entity.Coordinates{Latitude: 52.2297, Longitude: 21.0122},
		}},
	}, nil)

	rec := ts.do(http.MethodGet, "/map", "", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var view struct {
		APIKey string `json:"api_key"`
		Shops  struct {
			Type     string `json:"type"`
			Features []struct {
				ID       string `json:"id"`
				Geometry struct {
					Type        string    `json:"type"`
					Coordinates []float64 `json:"coordinates"`
				} `json:"geometry"`
				Properties map[string]any `json:"properties"`
			} `json:"features"`
		} `json:"shops"`
	}
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &view))

	assert.Equal(t, "browser-key", view.APIKey)
	assert.Equal(t, "FeatureCollection", view.Shops.Type)
	require.Len(t, view.Shops.Features, 1)
	feature := view.Shops.Features[0]
	assert.Equal(t, shopID.String(), feature.ID)
	assert.Equal(t, "Point", feature.Geometry.Type)
	assert.Equal(t, []float64{21.0122, 52.2297}, feature.Geometry.Coordinates)
	assert.Equal(t, "/shop/Tribe%20Zero", feature.Properties["url"])
}

func TestDirectoryHandler_Map_Empty(t *testing.T) {
	ts := newTestServer(t)
	ts.directory.EXPECT().MapData(mock.Anything).Return(&usecase.MapOutput{}, nil)

	rec := ts.do(http.MethodGet, "/map", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	shops := rawField(t, decode(t, rec).Data, "shops")
	assert.JSONEq(t, `[]`, string(rawField(t, shops, "features")))
}

func TestDirectoryHandler_ListPosts(t *testing.T) {
	ts := newTestServer(t)
	posted := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	posts := []*entity.Post{{ID: uuid.New(), AuthorName: "shopowner1", Title: "Hello", Content: "First", DatePosted: posted}}
	ts.directory.EXPECT().ListPosts(mock.Anything, 1).Return(entity.NewPage(posts, 1, 5, 1), nil)

	rec := ts.do(http.MethodGet, "/blog", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	page := decodeData[handler.PageView[handler.PostView]](t, rec)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "shopowner1", page.Items[0].Author)
	assert.True(t, posted.Equal(page.Items[0].DatePosted))
	assert.False(t, page.HasNext)
}

func TestDirectoryHandler_CreatePost(t *testing.T) {
	ts := newTestServer(t)
	ts.directory.EXPECT().
		CreatePost(mock.Anything, ts.owner.ID, &usecase.CreatePostInput{Title: "Hello", Content: "First"}).
		Return(&entity.Post{ID: uuid.New(), AuthorID: ts.owner.ID, AuthorName: "shopowner1", Title: "Hello", Content: "First"}, nil)

	rec := ts.do(http.MethodPost, "/blog", `{"title":"Hello","content":"First"}`, ownerToken)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Hello", decodeData[handler.PostView](t, rec).Title)
}

func TestDirectoryHandler_CreatePost_RequiresSession(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodPost, "/blog", `{"title":"Hello","content":"First"}`, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func rawField(t *testing.T, data json.RawMessage, field string) json.RawMessage {
	t.Helper()

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &fields))

	return fields[field]
}
