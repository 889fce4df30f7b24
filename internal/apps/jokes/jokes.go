package jokes

type Joke struct {
	Setup     string `json:"setup"`
	Punchline string `json:"punchline"`
}

var dadJokes = []Joke{
	{"Why don't scientists trust atoms?", "Because they make up everything!"},
	{"What did the baby corn say to the mama corn?", "Where's pop corn?"},
	{"How does a penguin build its house?", "Igloos it together!"},
	{"Why don't eggs tell jokes?", "They'd crack each other up!"},
	{"What's the best time to go to the dentist?", "Tooth-hurty!"},
	{"What do you call a factory that makes okay products?", "A satisfactory!"},
	{"What did one wall say to the other wall?", "I'll meet you at the corner!"},
	{"What did the ocean say to the beach?", "Nothing, it just waved!"},
	{"Why do fathers take an extra pair of socks when they go golfing?", "In case they get a hole in one!"},
	{"What do you call a fish wearing a crown?", "King of the sea!"},
}

// JokeView is one joke with its position and neighbours.
type JokeView struct {
	Index int  `json:"index"`
	Next  int  `json:"next"`
	Prev  int  `json:"prev"`
	Joke  Joke `json:"joke"`
	Liked bool `json:"liked,omitempty"`
}
