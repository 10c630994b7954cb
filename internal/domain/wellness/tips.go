package wellness

// Tip is a static wellness suggestion shown on the employee dashboard.
type Tip struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Tips returns the built-in wellness tip list.
func Tips() []Tip {
	return []Tip{
		{Title: "Take Regular Breaks", Description: "Take a 5-10 minute break every hour to reduce eye strain and mental fatigue."},
		{Title: "Practice Deep Breathing", Description: "Spend 2-3 minutes doing deep breathing exercises to reduce stress."},
		{Title: "Stay Hydrated", Description: "Drink at least 8 glasses of water throughout the day to maintain energy levels."},
		{Title: "Get Adequate Sleep", Description: "Aim for 7-9 hours of quality sleep each night for optimal performance."},
		{Title: "Exercise Regularly", Description: "Engage in at least 30 minutes of physical activity most days of the week."},
		{Title: "Maintain Work-Life Balance", Description: "Set clear boundaries between work and personal time to prevent burnout."},
		{Title: "Practice Mindfulness", Description: "Spend 10-15 minutes daily on mindfulness meditation or relaxation techniques."},
		{Title: "Eat Nutritious Meals", Description: "Consume balanced meals with plenty of fruits, vegetables, and whole grains."},
	}
}
