// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the pipeline to function:
//
//   - EmbeddingService: maps text to fixed-dimension vectors
//   - LLMService: generative model for extraction and drafting
//   - VectorStore: durable chunk storage with nearest-neighbour query
//   - DocumentReader: extracts plain text from resume files
//   - PageFetcher: returns raw page text for a job-posting URL
//   - ConfigStore: application configuration
//   - PromptStore: prompt templates for the generative model
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: any adapter package
package driven
