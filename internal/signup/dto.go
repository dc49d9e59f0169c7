package signup

// Form is the raw signup submission
type Form struct {
	Name          string `form:"name" validate:"required"`
	Nickname      string `form:"nickname" validate:"required"`
	ID            string `form:"id" validate:"required"`
	Password      string `form:"password" validate:"required"`
	PasswordCheck string `form:"password_check" validate:"required"` // 저장하지 않음
	Birthday      string `form:"birthday" validate:"required"`       // 주민번호 앞자리 YYMMDD-X
	PhoneNumber   string `form:"phone_number" validate:"required"`
}

// Old returns the submitted values for re-rendering the form.
// Password fields are never echoed back.
func (f *Form) Old() map[string]string {
	return map[string]string{
		"name":         f.Name,
		"nickname":     f.Nickname,
		"id":           f.ID,
		"birthday":     f.Birthday,
		"phone_number": f.PhoneNumber,
	}
}

// Record is a validated user ready to be stored.
// PasswordHash is a bcrypt hash and Birthday is masked.
type Record struct {
	Name         string
	Nickname     string
	ID           string
	PasswordHash string
	Birthday     string
	PhoneNumber  string
}
