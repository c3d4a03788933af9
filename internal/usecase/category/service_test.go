package category_test

import (
	"context"
	"testing"

	"github.com/hgarciaospina/backend-cafe-management-system/internal/auth"
	domainProduct "github.com/hgarciaospina/backend-cafe-management-system/internal/domain/product"
	"github.com/hgarciaospina/backend-cafe-management-system/internal/infrastructure/database/postgres"
	"github.com/hgarciaospina/backend-cafe-management-system/internal/testutil"
	"github.com/hgarciaospina/backend-cafe-management-system/internal/usecase/category"
	appErrors "github.com/hgarciaospina/backend-cafe-management-system/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	adminCtx = auth.WithPrincipal(context.Background(), &auth.Principal{UserID: 1, Email: "admin@cafe.com", Role: "admin"})
	userCtx  = auth.WithPrincipal(context.Background(), &auth.Principal{UserID: 2, Email: "user@cafe.com", Role: "user"})
)

func names(categories []category.CategoryResponse) []string {
	out := make([]string, 0, len(categories))
	for _, c := range categories {
		out = append(out, c.Name)
	}
	return out
}

func TestService_AddAndUpdate(t *testing.T) {
	svc := category.NewService(postgres.NewCategoryRepository(testutil.NewTestDB(t)))

	msg, err := svc.Add(adminCtx, &category.AddCategoryRequest{Name: "  Coffee "})
	require.NoError(t, err)
	assert.Equal(t, category.MsgCategoryAdded, msg)

	all, err := svc.GetAll(userCtx, "")
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Coffee", all[0].Name)

	msg, err = svc.Update(adminCtx, &category.UpdateCategoryRequest{ID: all[0].ID, Name: "Hot Coffee"})
	require.NoError(t, err)
	assert.Equal(t, category.MsgCategoryUpdated, msg)

	all, err = svc.GetAll(userCtx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"Hot Coffee"}, names(all))
}

func TestService_WriteRejections(t *testing.T) {
	svc := category.NewService(postgres.NewCategoryRepository(testutil.NewTestDB(t)))

	_, err := svc.Add(userCtx, &category.AddCategoryRequest{Name: "Coffee"})
	assert.ErrorIs(t, err, appErrors.ErrUnauthorized)

	_, err = svc.Add(adminCtx, &category.AddCategoryRequest{Name: "   "})
	code, _ := appErrors.CodeOf(err)
	assert.Equal(t, appErrors.CodeInvalidData, code)

	_, err = svc.Update(userCtx, &category.UpdateCategoryRequest{ID: 1, Name: "Tea"})
	assert.ErrorIs(t, err, appErrors.ErrUnauthorized)

	_, err = svc.Update(adminCtx, &category.UpdateCategoryRequest{ID: 42, Name: "Tea"})
	require.Error(t, err)
	code, _ = appErrors.CodeOf(err)
	assert.Equal(t, appErrors.CodeNotFound, code)
	assert.Contains(t, err.Error(), "Category with id 42 does not exist.")
}

func TestService_GetAllFilter(t *testing.T) {
	db := testutil.NewTestDB(t)
	categories := postgres.NewCategoryRepository(db)
	products := postgres.NewProductRepository(db)
	svc := category.NewService(categories)
	ctx := context.Background()

	for _, name := range []string{"Tea", "Coffee", "Pastry"} {
		_, err := svc.Add(adminCtx, &category.AddCategoryRequest{Name: name})
		require.NoError(t, err)
	}
	all, err := svc.GetAll(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"Coffee", "Pastry", "Tea"}, names(all))

	ids := map[string]uint{}
	for _, c := range all {
		ids[c.Name] = c.ID
	}
	require.NoError(t, products.Create(ctx, &domainProduct.Product{Name: "Latte", CategoryID: ids["Coffee"], Price: 4, Status: true}))
	inactive := &domainProduct.Product{Name: "Croissant", CategoryID: ids["Pastry"], Price: 3, Status: true}
	require.NoError(t, products.Create(ctx, inactive))
	require.NoError(t, products.UpdateStatus(ctx, inactive.ID, false))

	for _, filter := range []string{"true", "TRUE", " True "} {
		filtered, err := svc.GetAll(ctx, filter)
		require.NoError(t, err)
		assert.Equal(t, []string{"Coffee"}, names(filtered), "filter %q", filter)
	}

	unfiltered, err := svc.GetAll(ctx, "false")
	require.NoError(t, err)
	assert.Len(t, unfiltered, 3)
}
