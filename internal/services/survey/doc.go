// Package survey runs many independent conjugation sessions concurrently
// and tallies how often the two shared values agree.
//
// Sessions are executed on an ants worker pool. Every trial owns its State
// and its Sampler, seeded from the survey seed and the trial index, so a
// survey is reproducible regardless of scheduling. Outcomes are counted in
// Prometheus.
package survey
