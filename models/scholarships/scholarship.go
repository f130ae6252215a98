package scholarships

// Scholarship — позиция статического каталога. Каталог живет в коде,
// при добавлении в избранное поля копируются в запись пользователя.
type Scholarship struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Provider string `json:"provider"`
	Country  string `json:"country"`
	Deadline string `json:"deadline"`
	Amount   string `json:"amount"`
	Level    string `json:"level"`
	Field    string `json:"field"`
}

var Catalog = []Scholarship{
	{
		ID:       "fulbright-foreign-student-program",
		Title:    "Fulbright Foreign Student Program",
		Provider: "U.S. Department of State",
		Country:  "United States",
		Deadline: "2025-05-15",
		Amount:   "Fully Funded",
		Level:    "Master's/PhD",
		Field:    "All Fields",
	},
	{
		ID:       "chevening-scholarships",
		Title:    "Chevening Scholarships",
		Provider: "UK Government",
		Country:  "United Kingdom",
		Deadline: "2025-11-02",
		Amount:   "Fully Funded",
		Level:    "Master's",
		Field:    "All Fields",
	},
	{
		ID:       "daad-scholarships",
		Title:    "DAAD Scholarships",
		Provider: "German Academic Exchange Service",
		Country:  "Germany",
		Deadline: "2025-10-31",
		Amount:   "Fully Funded",
		Level:    "Master's/PhD",
		Field:    "Engineering, Sciences",
	},
	{
		ID:       "australia-awards-scholarships",
		Title:    "Australia Awards Scholarships",
		Provider: "Australian Government",
		Country:  "Australia",
		Deadline: "2025-04-30",
		Amount:   "Fully Funded",
		Level:    "Master's",
		Field:    "Development Studies",
	},
	{
		ID:       "vanier-canada-graduate-scholarships",
		Title:    "Vanier Canada Graduate Scholarships",
		Provider: "Government of Canada",
		Country:  "Canada",
		Deadline: "2025-11-01",
		Amount:   "$50,000/year",
		Level:    "PhD",
		Field:    "Health, Natural Sciences",
	},
	{
		ID:       "erasmus-mundus-joint-master-degrees",
		Title:    "Erasmus Mundus Joint Master Degrees",
		Provider: "European Commission",
		Country:  "Europe (Multiple)",
		Deadline: "2025-01-15",
		Amount:   "€1,400/month",
		Level:    "Master's",
		Field:    "Various Programs",
	},
}
