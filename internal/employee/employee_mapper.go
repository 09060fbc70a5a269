package employee

import "grainsync-console/internal/erpclient"

func mapDraftToResponse(d Draft) DraftResponse {
	resp := DraftResponse{
		ID:                  d.ID,
		FirstName:           d.FirstName,
		LastName:            d.LastName,
		DateOfBirth:         d.DateOfBirth,
		CNIC:                d.CNIC,
		Email:               d.Email,
		Address:             d.Address,
		Gender:              d.Gender,
		Department:          d.Department,
		Designation:         d.Designation,
		AllowedDesignations: d.Allowed,
		SpecialValue:        d.SpecialValue,
		State:               d.State,
		EmployeeID:          d.EmployeeID,
		RepairID:            d.RepairID,
		LastError:           d.LastError,
		OutcomeUnknown:      d.OutcomeUnknown,
		MissingFields:       d.MissingFields(),
	}
	if resp.AllowedDesignations == nil {
		resp.AllowedDesignations = []string{}
	}
	if field, ok := d.SpecialField(); ok {
		resp.SpecialField = &field
	}
	return resp
}

func mapEmployeeToResponse(e erpclient.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:          e.ID,
		FirstName:   e.FirstName,
		LastName:    e.LastName,
		DateOfBirth: e.DateOfBirth,
		CNIC:        e.CNIC,
		Email:       e.Email,
		Address:     e.Address,
		Gender:      e.Gender,
		Department:  DepartmentRef{ID: e.Department.ID, Name: e.Department.Name},
		Designation: e.Designation,
		Absences:    e.Absences,
		Leaves:      e.Leaves,
	}
}
