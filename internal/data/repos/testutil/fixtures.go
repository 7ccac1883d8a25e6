package testutil

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"github.com/yungbote/propdesk-backend/internal/domain/rental"
)

func SeedOwner(tb testing.TB, ctx context.Context, tx *gorm.DB, email string) *rental.Owner {
	tb.Helper()
	o := &rental.Owner{Email: email, Password: "hash"}
	if err := tx.WithContext(ctx).Create(o).Error; err != nil {
		tb.Fatalf("seed owner: %v", err)
	}
	return o
}

func SeedProperty(tb testing.TB, ctx context.Context, tx *gorm.DB, ownerID uint) *rental.Property {
	tb.Helper()
	p := &rental.Property{Address: "1 Main St", OwnerID: ownerID}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed property: %v", err)
	}
	return p
}

func SeedTenant(tb testing.TB, ctx context.Context, tx *gorm.DB, propertyID uint, email string) *rental.Tenant {
	tb.Helper()
	t := &rental.Tenant{Email: email, Password: "hash", PropertyID: propertyID}
	if err := tx.WithContext(ctx).Create(t).Error; err != nil {
		tb.Fatalf("seed tenant: %v", err)
	}
	return t
}

func SeedContractor(tb testing.TB, ctx context.Context, tx *gorm.DB, email string) *rental.Contractor {
	tb.Helper()
	c := &rental.Contractor{Email: email, Password: "hash"}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed contractor: %v", err)
	}
	return c
}
