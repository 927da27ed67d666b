// Package pipelinerun wires configuration, logging, the capture source,
// and the pipeline together for one interactive session.
package pipelinerun
