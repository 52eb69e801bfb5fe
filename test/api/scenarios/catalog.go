/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package scenarios

import (
	"context"
)

// Func is a single scenario.  Assertions are made with Gomega.
type Func func(ctx context.Context, f *Fixture)

// Case is a named scenario.  Chained cases depend on state left in the
// fixture by the chained cases before them.
type Case struct {
	Name    string
	Chained bool
	Run     Func
}

const (
	CaseCreateUser     = "create user"
	CaseGetUser        = "get user"
	CaseUpdateUser     = "update user"
	CaseDeleteUser     = "delete user"
	CaseGetDeletedUser = "get deleted user"
	CaseDuplicateEmail = "duplicate email"
	CaseMissingUser    = "missing user"
	CaseInvalidToken   = "invalid token"
)

// Catalog returns every case in execution order.
func Catalog() []Case {
	return []Case{
		{Name: CaseCreateUser, Chained: true, Run: CreateUser},
		{Name: CaseGetUser, Chained: true, Run: GetUser},
		{Name: CaseUpdateUser, Chained: true, Run: UpdateUser},
		{Name: CaseDeleteUser, Chained: true, Run: DeleteUser},
		{Name: CaseGetDeletedUser, Chained: true, Run: GetDeletedUser},
		{Name: CaseDuplicateEmail, Run: DuplicateEmail},
		{Name: CaseMissingUser, Run: MissingUser},
		{Name: CaseInvalidToken, Run: InvalidToken},
	}
}
