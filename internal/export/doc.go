// Package export writes clip plans in editor interchange formats: CMX
// 3600 edit decision lists and Shotcut MLT projects.
package export
