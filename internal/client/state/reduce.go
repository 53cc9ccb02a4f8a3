package state

import "parkospace/internal/domain/entity"

// Reduce applies a to s and returns the next snapshot. changed is false when the
// action had no effect: a result for a superseded query, or removal of an unknown item.
// s is never modified.
func Reduce(s Snapshot, a Action) (next Snapshot, changed bool) {
	next = s

	switch act := a.(type) {
	case LocationChanged:
		next.Reference = act.Point
	case RadiusChanged:
		next.RadiusKm = act.RadiusKm
	case QueryIssued:
		next.IssuedSeq = s.IssuedSeq + 1
	case QueryResolved:
		if act.Seq != s.IssuedSeq || act.Seq <= s.AppliedSeq {
			return s, false
		}
		listings := act.Listings
		if listings == nil {
			listings = []entity.NearbyListing{}
		}
		next.Listings = listings
		next.AppliedSeq = act.Seq
	case ActivityChanged:
		next.Activity = act.Activity
	case SessionChanged:
		next.Session = act.Session
		if act.Session == nil || act.Session.Owner.Phone != s.OwnerPhone() {
			next.Form = Form{Mode: FormCreating}
			next.Portfolio = []*entity.Listing{}
		}
	case FormEditStarted:
		if act.Listing == nil {
			return s, false
		}
		next.Form = Form{Mode: FormEditing, EditingID: act.Listing.ID, Editing: act.Listing}
	case FormCancelled, FormSubmitted:
		next.Form = Form{Mode: FormCreating}
	case PendingLocationSet:
		next.Form.Pending = act.Place
	case PortfolioLoaded:
		listings := act.Listings
		if listings == nil {
			listings = []*entity.Listing{}
		}
		next.Portfolio = listings
	case PortfolioItemRemoved:
		idx := -1
		for i, l := range s.Portfolio {
			if l.ID == act.ID {
				idx = i

				break
			}
		}
		if idx < 0 {
			return s, false
		}
		portfolio := make([]*entity.Listing, 0, len(s.Portfolio)-1)
		portfolio = append(portfolio, s.Portfolio[:idx]...)
		portfolio = append(portfolio, s.Portfolio[idx+1:]...)
		next.Portfolio = portfolio
		if s.Form.Mode == FormEditing && s.Form.EditingID == act.ID {
			next.Form = Form{Mode: FormCreating}
		}
	default:
		return s, false
	}

	return next, true
}
