package view

import (
	"parkospace/internal/domain/entity"
	"parkospace/internal/util"

	"github.com/google/uuid"
)

// PortfolioItem is one row of the owner dashboard.
type PortfolioItem struct {
	ID      uuid.UUID
	Title   string
	Status  string // "SOLD" or "ACTIVE"
	Hourly  string
	Daily   string
	Monthly string
	Size    string
	Editing bool
}

// DerivePortfolio renders an owner's listings. editing marks the row bound to the form.
func DerivePortfolio(listings []*entity.Listing, editing uuid.UUID) []PortfolioItem {
	items := make([]PortfolioItem, 0, len(listings))
	for _, l := range listings {
		status := "ACTIVE"
		if l.IsSold {
			status = soldLabel
		}
		items = append(items, PortfolioItem{
			ID:      l.ID,
			Title:   l.Title,
			Status:  status,
			Hourly:  util.FormatRupees(l.Pricing.Hourly) + "/hr",
			Daily:   util.FormatRupees(l.Pricing.Daily) + "/day",
			Monthly: util.FormatRupees(l.Pricing.Monthly) + "/mo",
			Size:    util.FormatSize(l.Dimensions.Length, l.Dimensions.Breadth),
			Editing: editing != uuid.Nil && l.ID == editing,
		})
	}

	return items
}
