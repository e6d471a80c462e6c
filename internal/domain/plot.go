package domain

type PlotStatus string

const (
	PlotStatusAvailable PlotStatus = "available"
	PlotStatusBooked    PlotStatus = "booked"
	PlotStatusSold      PlotStatus = "sold"
)

type Plot struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Price       float64    `json:"price"`
	Area        string     `json:"area"`
	Location    string     `json:"location"`
	Description string     `json:"description"`
	Status      PlotStatus `json:"status"`
	Images      []string   `json:"images"`
	Features    []string   `json:"features"`
}

func (p *Plot) IsAvailable() bool {
	return p.Status == PlotStatusAvailable
}
