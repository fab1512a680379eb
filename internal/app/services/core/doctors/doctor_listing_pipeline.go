package doctors

import (
	"docpoint-service/internal/pkg/constvars"
	"docpoint-service/internal/pkg/dto/responses"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// filterBySearchText keeps doctors whose name, description, tags or
// specialties contain the search text, case-insensitively. An empty query
// keeps everything.
func filterBySearchText(views []responses.DoctorView, searchText string) []responses.DoctorView {
	searchText = strings.TrimSpace(searchText)
	if searchText == "" {
		return views
	}
	needle := strings.ToLower(searchText)

	filtered := views[:0]
	for _, view := range views {
		if matchesSearchText(view, needle) {
			filtered = append(filtered, view)
		}
	}
	return filtered
}

func matchesSearchText(view responses.DoctorView, needle string) bool {
	if strings.Contains(strings.ToLower(view.Name), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(view.Description), needle) {
		return true
	}
	for _, tag := range view.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	for _, specialty := range view.Specialties {
		if strings.Contains(strings.ToLower(specialty), needle) {
			return true
		}
	}
	return false
}

// filterBySpecialty keeps doctors listing the exact specialty. The match is
// case-insensitive but not partial.
func filterBySpecialty(views []responses.DoctorView, specialty string) []responses.DoctorView {
	specialty = strings.TrimSpace(specialty)
	if specialty == "" {
		return views
	}

	filtered := views[:0]
	for _, view := range views {
		for _, candidate := range view.Specialties {
			if strings.EqualFold(candidate, specialty) {
				filtered = append(filtered, view)
				break
			}
		}
	}
	return filtered
}

func filterOpenOnly(views []responses.DoctorView) []responses.DoctorView {
	filtered := views[:0]
	for _, view := range views {
		if view.IsOpen {
			filtered = append(filtered, view)
		}
	}
	return filtered
}

func filterByFavorites(views []responses.DoctorView, favoriteIDs []string) []responses.DoctorView {
	favorites := make(map[string]struct{}, len(favoriteIDs))
	for _, id := range favoriteIDs {
		favorites[id] = struct{}{}
	}

	filtered := views[:0]
	for _, view := range views {
		if _, ok := favorites[view.ID]; ok {
			filtered = append(filtered, view)
		}
	}
	return filtered
}

// sortDoctorViews orders the views in place. Ties keep their incoming
// order. Name comparisons are collation-aware so accented names sort where
// a directory reader expects them.
func sortDoctorViews(views []responses.DoctorView, sortBy string) {
	switch sortBy {
	case constvars.SortByNameAsc:
		collator := collate.New(language.Spanish)
		sort.SliceStable(views, func(i, j int) bool {
			return collator.CompareString(views[i].Name, views[j].Name) < 0
		})
	case constvars.SortByNameDesc:
		collator := collate.New(language.Spanish)
		sort.SliceStable(views, func(i, j int) bool {
			return collator.CompareString(views[i].Name, views[j].Name) > 0
		})
	case constvars.SortByRatingAsc:
		sort.SliceStable(views, func(i, j int) bool {
			return views[i].Rating.Mean < views[j].Rating.Mean
		})
	case constvars.SortByRatingDesc:
		sort.SliceStable(views, func(i, j int) bool {
			return views[i].Rating.Mean > views[j].Rating.Mean
		})
	}
}

func normalizePagination(page, pageSize int) (int, int) {
	if page < 1 {
		page = constvars.DefaultPage
	}
	if pageSize < 1 {
		pageSize = constvars.DefaultPageSize
	}
	if pageSize > constvars.MaxPageSize {
		pageSize = constvars.MaxPageSize
	}
	return page, pageSize
}

func paginate(views []responses.DoctorView, page, pageSize int) []responses.DoctorView {
	start := (page - 1) * pageSize
	if start >= len(views) {
		return []responses.DoctorView{}
	}
	end := start + pageSize
	if end > len(views) {
		end = len(views)
	}
	return views[start:end]
}
