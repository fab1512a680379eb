package requests

type CreateDoctor struct {
	Name         string   `json:"name" validate:"required,min=2,max=120"`
	Description  string   `json:"description" validate:"max=2000"`
	Tags         []string `json:"tags"`
	Specialties  []string `json:"specialties"`
	OpeningHours string   `json:"opening_hours"`
}

type UpdateDoctor struct {
	Name         string   `json:"name" validate:"required,min=2,max=120"`
	Description  string   `json:"description" validate:"max=2000"`
	Tags         []string `json:"tags"`
	Specialties  []string `json:"specialties"`
	OpeningHours string   `json:"opening_hours"`
}

type UploadDoctorPhoto struct {
	ImageData     string `json:"image_data" validate:"required,base64"`
	FileExtension string `json:"file_extension" validate:"required,oneof=.jpg .jpeg .png .webp"`
}

// ListDoctors carries the in-memory filter/sort options applied after the
// full collection fetch. FavoriteIDs comes from the client, which owns the
// favorite list.
type ListDoctors struct {
	SearchText    string
	Specialty     string
	OpenOnly      bool
	FavoritesOnly bool
	FavoriteIDs   []string
	SortBy        string `validate:"omitempty,oneof=name_asc name_desc rating_asc rating_desc"`
	Page          int
	PageSize      int
}
