package services

import "github.com/zeebo/errs"

// Error is the error class for the duty-log engine.
var Error = errs.Class("hos")
