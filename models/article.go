package models

// Category is the fixed set of feed topics. The sentinels "All" (no filter)
// and "For You" (personalized) are not members; they are accepted wherever a
// category-or-sentinel string is expected.
type Category string

const (
	CategoryWorld      Category = "World"
	CategoryBusiness   Category = "Business"
	CategoryScience    Category = "Science"
	CategoryTechnology Category = "Technology"
	CategoryCulture    Category = "Culture"
	CategoryEconomics  Category = "Economics"

	CategoryAll    = "All"
	CategoryForYou = "For You"
)

// Categories lists the selectable topic filters in display order.
var Categories = []Category{
	CategoryWorld,
	CategoryBusiness,
	CategoryTechnology,
	CategoryScience,
	CategoryCulture,
	CategoryEconomics,
}

// IsCategory reports whether s names a concrete category (sentinels excluded).
func IsCategory(s string) bool {
	for _, c := range Categories {
		if string(c) == s {
			return true
		}
	}
	return false
}

// ArticlePreview is a single feed card.
type ArticlePreview struct {
	ID       string `json:"id" bson:"id"`
	Title    string `json:"title" bson:"title"`
	Summary  string `json:"summary" bson:"summary"`
	Category string `json:"category" bson:"category"`
	Source   string `json:"source,omitempty" bson:"source,omitempty"`
	ImageURL string `json:"imageUrl" bson:"imageUrl"`
	Date     string `json:"date" bson:"date"`
}

// ArticleParagraph is one bilingual paragraph pair.
type ArticleParagraph struct {
	EN string `json:"en"`
	CN string `json:"cn"`
}

// ArticleContent is the full bilingual rendition of an article, including
// the vocabulary the provider pre-picked for the learner.
type ArticleContent struct {
	Title       string             `json:"title"`
	Subtitle    string             `json:"subtitle"`
	Author      string             `json:"author"`
	Date        string             `json:"date"`
	Difficulty  string             `json:"difficulty"` // CEFR level: B1, B2, C1, C2
	ReadTimeMin int                `json:"readTimeMin"`
	Paragraphs  []ArticleParagraph `json:"paragraphs"`
	Vocabulary  []VocabItem        `json:"vocabulary"`
}
