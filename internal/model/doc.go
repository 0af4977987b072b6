// Package model defines the data structures shared by the storage, operation
// and presentation layers of projtrack.
//
// # Project
//
// The [Project] struct is one tracked project. Its JSON form is the wire
// format of both the persisted collection and the export document:
//
//	{"id":1718000000000,"name":"Site redesign","startDate":"2024-01-01",
//	 "endDate":"2024-01-05","days":5,"status":"ongoing","payment":1200,
//	 "paymentDate":null}
//
// Optional calendar dates are pointers so that an absent date round-trips as
// JSON null rather than an empty string.
//
// # Summary
//
// The [Summary] struct holds the aggregate statistics shown beside the list:
// number of projects and the total payment across all of them.
package model
