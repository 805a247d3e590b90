package request

type DayAvailabilityQuery struct {
	Date string `form:"date" binding:"required"`
}

type SlotAvailabilityQuery struct {
	Date   string `form:"date" binding:"required"`
	Time   string `form:"time" binding:"required,slot"`
	Guests int    `form:"guests" binding:"required,min=1,max=8"`
}
