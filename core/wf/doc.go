// Package wf holds the pieces both Wright-Fisher engines share: the
// read-only trajectory view and the step errors.
//
// Engines are single-use and single-threaded. Each owns its sampler and its
// trajectory; callers serialize Step calls themselves.
package wf
