package dtos

type CreateCheckInReq struct {
	Date     string  `json:"date"`
	Weight   float64 `json:"weight"`
	DayIndex int     `json:"dayIndex"`
}

type AdvisorTipReq struct {
	ProfileID string `json:"profileId"`
	Question  string `json:"question"`
}

type AdvisorTipResp struct {
	Tip      string `json:"tip"`
	Fallback bool   `json:"fallback"`
}

type UpdateProfileReq struct {
	Name                 *string  `json:"name"`
	Age                  *int     `json:"age"`
	Sex                  *string  `json:"sex"`
	Objective            *string  `json:"objective"`
	CurrentWeight        *float64 `json:"currentWeight"`
	TargetWeight         *float64 `json:"targetWeight"`
	Height               *float64 `json:"height"`
	ClinicalRestrictions []string `json:"clinicalRestrictions"`
}

type ReplaceScheduleReq struct {
	UnitID string        `json:"unitId"`
	Days   []TrainingDay `json:"days"`
}
