// Package services defines the error taxonomy shared by the external
// collaborator clients and the orchestration loop.
//
// Sentinel errors classify failures by how the loop must react: source
// failures end the run, classification and generation failures are absorbed
// and converted to observable state. Wrap tags an error with a sentinel plus
// component context so callers can classify with errors.Is while keeping a
// readable message.
package services
