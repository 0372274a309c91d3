package domain

type Movie struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Director string  `json:"director"`
	Rating   float64 `json:"rating"`
}

type ShowtimeSlot struct {
	Date   string   `json:"date"`
	Movies []string `json:"movies"`
}
