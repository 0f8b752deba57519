package route

// Corridor is a directed conversion edge. Fee is charged in Source units
// before the amount is multiplied by Rate.
type Corridor struct {
	Source      string  `json:"source" yaml:"source"`
	Destination string  `json:"destination" yaml:"destination"`
	Fee         float64 `json:"fee" yaml:"fee"`
	Rate        float64 `json:"rate" yaml:"rate"`
}

func (c Corridor) From() string { return c.Source }
func (c Corridor) To() string   { return c.Destination }

// Apply mô phỏng việc chuyển amount qua corridor này.
// Kết quả trả về:
//   - received: (amount - Fee) * Rate
//   - passable: true nếu received > 0. Corridor không đi qua được thì
//     bị loại khỏi frontier.
func (c Corridor) Apply(amount float64) (float64, bool) {
	received := (amount - c.Fee) * c.Rate
	return received, received > 0
}
