package skill

// Category is one of the four coarse skill buckets offered by the filter UI.
type Category string

const (
	CategoryWeak         Category = "Yếu"
	CategoryIntermediate Category = "TB"
	CategoryAdvanced     Category = "Khá"
	// CategoryAny is the universal category. Slots carrying it pass every skill filter.
	CategoryAny Category = "Mọi trình độ"
)

// UniversalLabel is the fine-grained label emitted when no skill data is known.
const UniversalLabel = string(CategoryAny)

// Categories lists the coarse categories in the order the filter UI shows them.
var Categories = []Category{CategoryWeak, CategoryIntermediate, CategoryAdvanced, CategoryAny}

// Bucket is a named sub-range of the [0, 5] skill scale. Hi is the printed upper
// edge; values between Hi and the next bucket's Lo still belong to this bucket.
type Bucket struct {
	Name string  `json:"name"`
	Lo   float64 `json:"lo"`
	Hi   float64 `json:"hi"`
}

// Buckets partitions [0, 5] in increasing difficulty. The labels are the ones the
// local badminton community uses in recruiting posts. Hi is display-only except on
// the last bucket: membership runs from Lo up to the next bucket's Lo.
var Buckets = []Bucket{
	{Name: "Yếu", Lo: 0, Hi: 1.49},
	{Name: "Yếu+", Lo: 1.5, Hi: 1.99},
	{Name: "TB-", Lo: 2.0, Hi: 2.49},
	{Name: "TB", Lo: 2.5, Hi: 2.99},
	{Name: "TB+", Lo: 3.0, Hi: 3.49},
	{Name: "Khá-", Lo: 3.5, Hi: 3.99},
	{Name: "Khá", Lo: 4.0, Hi: 4.49},
	{Name: "Khá+", Lo: 4.5, Hi: 4.99},
	{Name: "Giỏi", Lo: 5.0, Hi: 5.0},
}

const (
	// MinLevel and MaxLevel bound the numeric skill scale.
	MinLevel = 0.0
	MaxLevel = 5.0
)
