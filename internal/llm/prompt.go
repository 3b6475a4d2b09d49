package llm

import "fmt"

func BuildExtractionPrompt(input string) string {
	return `Analyze this food item description. Extract:
1. Title (catchy)
2. Professional description
3. Price (number)
4. isVeg (boolean)
5. Category (e.g., 'Main Course', 'Sides', 'Beverage', 'Dessert')

Input: "` + input + `"`
}

func BuildImagePrompt(dishTitle string) string {
	return fmt.Sprintf(
		"A professional food photography shot of %s. High resolution, bokeh background, commercial lighting, delicious presentation.",
		dishTitle,
	)
}
