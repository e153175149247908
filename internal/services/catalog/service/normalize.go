package service

import "coursedex/internal/core/normalize"

// the echoed names match the keys the engine searched with
var (
	normalizeName = normalize.Instructor
	normalizeCode = normalize.CourseCode
)
