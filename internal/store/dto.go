package store

// Form is the raw store registration submission
type Form struct {
	Name         string `form:"name" validate:"required"`
	Introduce    string `form:"introduce" validate:"required,max=1000"` // 가게를 소개하는 글 (최소 30자 이상)
	Location     string `form:"location" validate:"required"`           // '경상북도 의성군 **면 ...'
	GoogleMapURL string `form:"google_map_url" validate:"required,http_url"`
	Product      string `form:"product" validate:"required"` // 가게 대표 상품
}

// Old returns the submitted values for re-rendering the form
func (f *Form) Old() map[string]string {
	return map[string]string{
		"name":           f.Name,
		"introduce":      f.Introduce,
		"location":       f.Location,
		"google_map_url": f.GoogleMapURL,
		"product":        f.Product,
	}
}

// Record is a validated store. GoogleMapURL is in canonical form.
type Record struct {
	ID           string
	Name         string
	Introduce    string
	Location     string
	GoogleMapURL string
	Product      string
}

// Old returns the validated values for re-rendering the form
func (r Record) Old() map[string]string {
	return map[string]string{
		"name":           r.Name,
		"introduce":      r.Introduce,
		"location":       r.Location,
		"google_map_url": r.GoogleMapURL,
		"product":        r.Product,
	}
}
