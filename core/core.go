// Package core implements the project attribution and scoring engine:
// file classification, project grouping, composite scoring, contributor
// attribution and report assembly. Everything here is a pure batch
// computation; the only I/O-bound collaborator (repository mining) is
// injected behind the contract.RepoMiner interface.
package core
