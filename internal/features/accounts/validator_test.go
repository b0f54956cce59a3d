package accounts

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCount_UnmarshalAndParse(t *testing.T) {
	var c struct {
		Followers Count `json:"followers"`
	}

	// scraped string with thousands separators
	require.NoError(t, json.Unmarshal([]byte(`{"followers":"1,234"}`), &c))
	n, err := c.Followers.Int()
	require.NoError(t, err)
	require.Equal(t, 1234, n)

	// dots and spaces also work
	require.NoError(t, json.Unmarshal([]byte(`{"followers":"12.345"}`), &c))
	n, err = c.Followers.Int()
	require.NoError(t, err)
	require.Equal(t, 12345, n)

	// plain JSON numbers too
	require.NoError(t, json.Unmarshal([]byte(`{"followers":987}`), &c))
	n, err = c.Followers.Int()
	require.NoError(t, err)
	require.Equal(t, 987, n)

	// garbage fails at parse time, not decode time
	require.NoError(t, json.Unmarshal([]byte(`{"followers":"lots"}`), &c))
	_, err = c.Followers.Int()
	require.Error(t, err)
}

func validCandidate() Candidate {
	return Candidate{
		Username:       "some_account",
		Followers:      "1,234",
		Following:      "56",
		ProfilePicture: "https://cdn.example.com/p.jpg",
		ImageURL:       []string{"https://cdn.example.com/1.jpg"},
		Date:           "2026-08-01",
	}
}

func TestNormalizeCandidates(t *testing.T) {
	missingUsername := validCandidate()
	missingUsername.Username = ""

	missingImages := validCandidate()
	missingImages.ImageURL = nil

	badCount := validCandidate()
	badCount.Followers = "many"

	got := normalizeCandidates([]Candidate{
		validCandidate(),
		missingUsername,
		missingImages,
		badCount,
	})

	// invalid records are dropped silently, the rest get parsed counts
	require.Len(t, got, 1)
	require.Equal(t, "some_account", got[0].Username)
	require.Equal(t, 1234, got[0].Followers)
	require.Equal(t, 56, got[0].Following)
}

func TestDropExisting(t *testing.T) {
	mk := func(names ...string) []Account {
		accounts := make([]Account, len(names))
		for i, name := range names {
			accounts[i] = Account{Username: name}
		}
		return accounts
	}

	tests := []struct {
		name     string
		accounts []Account
		existing map[string]bool
		want     []string
	}{
		{
			name:     "no duplicates",
			accounts: mk("a", "b"),
			existing: map[string]bool{},
			want:     []string{"a", "b"},
		},
		{
			name:     "some already exist",
			accounts: mk("a", "b", "c", "d"),
			existing: map[string]bool{"b": true, "d": true},
			want:     []string{"a", "c"},
		},
		{
			name:     "all already exist",
			accounts: mk("a", "b"),
			existing: map[string]bool{"a": true, "b": true},
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dropExisting(tt.accounts, tt.existing)

			// exactly N-M survive; the M duplicates disappear silently
			names := make([]string, len(got))
			for i, account := range got {
				names[i] = account.Username
			}
			require.Equal(t, tt.want, names)
		})
	}
}

func TestNormalizeCandidates_KeepsWorkflowFlags(t *testing.T) {
	c := validCandidate()
	c.RemoveItem = true
	c.KeepItem = true
	c.AccountsOrigin = "explore"

	got := normalizeCandidates([]Candidate{c})
	require.Len(t, got, 1)
	require.True(t, got[0].RemoveItem)
	require.True(t, got[0].KeepItem)
	require.Equal(t, "explore", got[0].AccountsOrigin)
}
