package asg

import "fmt"

// NotFoundError is returned when AWS reports no group with the given name.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("auto scaling group %q is not found", e.Name)
}

// TransientError wraps a transport or service failure while reading a group.
type TransientError struct {
	Name string
	Err  error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("describing auto scaling group %q: %v", e.Name, e.Err)
}

func (e *TransientError) Unwrap() error {
	return e.Err
}

// NotMixedInstancesError is returned for a group without an on-demand base,
// i.e. one that has no mixed instances policy.
type NotMixedInstancesError struct {
	Name string
}

func (e *NotMixedInstancesError) Error() string {
	return fmt.Sprintf("auto scaling group %q has no mixed instances policy", e.Name)
}

// UpdateError is returned when AWS rejects a new on-demand base.
type UpdateError struct {
	Name    string
	NewBase int64
	Err     error
}

func (e *UpdateError) Error() string {
	return fmt.Sprintf("updating on-demand base of %q to %d: %v", e.Name, e.NewBase, e.Err)
}

func (e *UpdateError) Unwrap() error {
	return e.Err
}

// TagValueError is returned when the minimum on-demand base tag holds
// something other than a non-negative integer.
type TagValueError struct {
	Key   string
	Value string
	Err   error
}

func (e *TagValueError) Error() string {
	return fmt.Sprintf("%s tag has invalid value %q: %v", e.Key, e.Value, e.Err)
}

func (e *TagValueError) Unwrap() error {
	return e.Err
}
