package accounts

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// normalizeCandidates drops submitted records missing required fields and
// converts the survivors to accounts with parsed integer counts. The
// duplicate check against existing usernames happens later, in the handler.
func normalizeCandidates(candidates []Candidate) []Account {
	accounts := make([]Account, 0, len(candidates))

	for _, candidate := range candidates {
		if err := validate.Struct(candidate); err != nil {
			continue
		}

		followers, err := candidate.Followers.Int()
		if err != nil {
			continue
		}
		following, err := candidate.Following.Int()
		if err != nil {
			continue
		}

		accounts = append(accounts, Account{
			Username:       candidate.Username,
			Followers:      followers,
			Following:      following,
			ProfilePicture: candidate.ProfilePicture,
			AccountsOrigin: candidate.AccountsOrigin,
			RemoveItem:     candidate.RemoveItem,
			KeepItem:       candidate.KeepItem,
			ImageURL:       candidate.ImageURL,
			Date:           candidate.Date,
		})
	}

	return accounts
}

// dropExisting filters out accounts whose username is already taken.
// Duplicates are skipped silently, never reported back to the caller.
func dropExisting(accounts []Account, existing map[string]bool) []Account {
	fresh := accounts[:0]
	for _, account := range accounts {
		if !existing[account.Username] {
			fresh = append(fresh, account)
		}
	}
	return fresh
}
