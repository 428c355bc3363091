package application_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tableside/tableside/internal/application"
	"github.com/tableside/tableside/internal/domain"
)

func TestMenuService_Categories(t *testing.T) {
	svc := application.NewMenuService(testCatalog(t))
	assert.Equal(t, []string{"beverages", "mains", "salads"}, svc.Categories())
}

func TestMenuService_ItemsByCategory(t *testing.T) {
	svc := application.NewMenuService(testCatalog(t))

	items := svc.ItemsByCategory("mains")
	require.Len(t, items, 1)
	assert.Equal(t, "burger-01", items[0].ID)

	assert.Empty(t, svc.ItemsByCategory("desserts"))
}

func TestMenuService_ItemDetails_ByIDAndName(t *testing.T) {
	svc := application.NewMenuService(testCatalog(t))

	byID, err := svc.ItemDetails("burger-01")
	require.NoError(t, err)
	byName, err := svc.ItemDetails("classic cheeseburger")
	require.NoError(t, err)
	assert.Equal(t, byID, byName)
}

func TestMenuService_ItemDetails_NotFound(t *testing.T) {
	svc := application.NewMenuService(testCatalog(t))
	_, err := svc.ItemDetails("pizza")
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestMenuService_Find_Permissive(t *testing.T) {
	svc := application.NewMenuService(testCatalog(t))

	all := svc.Find(domain.FilterCriteria{})
	unknownPref := svc.Find(domain.FilterCriteria{DietaryPreference: "carnivore"})
	assert.Equal(t, all, unknownPref, "unknown preference values filter nothing")

	vegan := svc.Find(domain.FilterCriteria{DietaryPreference: domain.PrefVegan})
	assert.Len(t, vegan, 2)
}
