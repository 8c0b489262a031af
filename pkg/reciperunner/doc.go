// Package reciperunner hosts the shared abstractions for executing rendered
// recipe plans. It exposes the `Executor` interface plus helpers (`Factory`,
// `Resolve`) so CLI packages can inject execution dependencies once and obtain
// a runner, while unit tests can swap in fakes. This keeps sequential
// fail-fast execution reusable without wiring duplication.
package reciperunner
