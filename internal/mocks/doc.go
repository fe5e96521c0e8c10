// Package mocks provides centralized mock implementations for testing.
//
// Each mock is a struct with one function field per interface method. A nil
// function field falls back to a default: the zero value plus DefaultError.
//
// Usage:
//
//	import "github.com/phrazzld/task-api/internal/mocks"
//
//	func TestSomething(t *testing.T) {
//	    store := &mocks.MockTaskStore{
//	        GetByIDFn: func(ctx context.Context, id int64) (*domain.Task, error) {
//	            return nil, store.ErrTaskNotFound
//	        },
//	    }
//
//	    // Use the mock in your test...
//	}
//
// When adding a new mock to this package:
//  1. Create a new file named after the interface being mocked
//  2. Implement the mock struct with function fields for each interface method
//  3. Document any helper methods or special functionality
package mocks
