package models

// Contestant represents a competitor shown on the homepage
type Contestant struct {
	ID         string `json:"id" bson:"_id" firestore:"-"`
	Name       string `json:"name" bson:"name" firestore:"name"`
	Age        int    `json:"age" bson:"age" firestore:"age"`
	Location   string `json:"location" bson:"location" firestore:"location"`
	Bio        string `json:"bio" bson:"bio" firestore:"bio"`
	Votes      int    `json:"votes" bson:"votes" firestore:"votes"`
	ImageURL   string `json:"imageUrl" bson:"image_url" firestore:"image_url"`
	StreamURL  string `json:"streamUrl,omitempty" bson:"stream_url,omitempty" firestore:"stream_url"`
	Eliminated bool   `json:"eliminated" bson:"eliminated" firestore:"eliminated"`
}

// HasStream reports whether the contestant has a livestream link
func (c *Contestant) HasStream() bool {
	return c.StreamURL != ""
}
