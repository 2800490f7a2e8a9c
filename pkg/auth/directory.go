package auth

import "context"

// DirectoryResolver resolves principals against a fixed, externally
// provisioned directory. Production deployments replace this with a real
// identity provider; the rest of the system depends only on
// PrincipalResolver.
type DirectoryResolver struct {
	directory  map[string]Principal
	fallbackID string
}

// NewDirectoryResolver creates a resolver over the given directory.
// fallbackID, when non-empty, is used for requests carrying no token;
// it must be empty outside development.
func NewDirectoryResolver(directory map[string]Principal, fallbackID string) *DirectoryResolver {
	return &DirectoryResolver{
		directory:  directory,
		fallbackID: fallbackID,
	}
}

// DefaultDirectory returns the development principal directory
func DefaultDirectory() map[string]Principal {
	return map[string]Principal{
		"user123": {ID: "user123", Name: "Maria (Owner)"},
		"user789": {ID: "user789", Name: "Ivan (Member)"},
		"user456": {ID: "user456", Name: "Petr (Stranger)"},
	}
}

// Resolve looks up the token in the directory
func (r *DirectoryResolver) Resolve(ctx context.Context, token string) (*Principal, error) {
	if token == "" {
		if r.fallbackID == "" {
			return nil, ErrNotAuthenticated()
		}
		token = r.fallbackID
	}

	principal, ok := r.directory[token]
	if !ok {
		return nil, ErrNotAuthenticated()
	}

	return &principal, nil
}
