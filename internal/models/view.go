package models

// Credentials holds the client-side keys exposed to the rendered pages.
// Values are read from the environment on every request.
type Credentials struct {
	FirebaseAPIKey       string `json:"firebaseApiKey"`
	FirebaseProjectID    string `json:"firebaseProjectId"`
	FirebaseAppID        string `json:"firebaseAppId"`
	FlutterwavePublicKey string `json:"flutterwavePublicKey"`
	SolanaProjectID      string `json:"solanaProjectId"`
}

// HomeView is the page context for the homepage
type HomeView struct {
	Contestants []*Contestant `json:"contestants"`
	DailyTask   *DailyTask    `json:"dailyTask"`
	CurrentDay  int           `json:"currentDay"`
	Credentials Credentials   `json:"credentials"`
}

// ActiveContestants returns the contestants that have not been eliminated
func (v *HomeView) ActiveContestants() []*Contestant {
	active := make([]*Contestant, 0, len(v.Contestants))
	for _, c := range v.Contestants {
		if !c.Eliminated {
			active = append(active, c)
		}
	}
	return active
}

// AdminView is the page context for the admin dashboard
type AdminView struct {
	Credentials Credentials `json:"credentials"`
}
