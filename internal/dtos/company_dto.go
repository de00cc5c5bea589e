package dtos

type AddCompanyRequest struct {
	CompanyName       string `json:"company_name" binding:"required,min=2,max=100"`
	Description       string `json:"description" binding:"required"`
	Industry          string `json:"industry" binding:"required"`
	Address           string `json:"address" binding:"required"`
	NumberOfEmployees string `json:"number_of_employees" binding:"required,oneof=1-10 11-20 21-50 51-100 101-500 500+"`
	CompanyEmail      string `json:"company_email" binding:"required,email"`
}

type UpdateCompanyRequest struct {
	CompanyName       string `json:"company_name" binding:"omitempty,min=2,max=100"`
	Description       string `json:"description"`
	Industry          string `json:"industry"`
	Address           string `json:"address"`
	NumberOfEmployees string `json:"number_of_employees" binding:"omitempty,oneof=1-10 11-20 21-50 51-100 101-500 500+"`
	CompanyEmail      string `json:"company_email" binding:"omitempty,email"`
}

// SearchCompaniesQuery requires at least one criterion; the handler
// enforces that since binding cannot express it across fields.
type SearchCompaniesQuery struct {
	CompanyName  string `form:"company_name"`
	CompanyEmail string `form:"company_email" binding:"omitempty,email"`
	Industry     string `form:"industry"`
}

type ApplicationsExportQuery struct {
	CompanyID uint   `form:"company_id" binding:"required"`
	Date      string `form:"date" binding:"required,datetime=2006-01-02"`
}
