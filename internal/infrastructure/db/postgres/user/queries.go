package user

const (
	SelectUsers = `
		SELECT id, email, name, password, created_at, updated_at
		FROM users
		ORDER BY created_at, id
	`
	SelectUserByID = `
		SELECT id, email, name, password, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	InsertUser = `
		INSERT INTO users (id, email, name, password, created_at, updated_at)
		VALUES ($1, $2, $3, $4, now(), now())
		RETURNING id, email, name, password, created_at, updated_at
	`
	// updated_at must move forward even when two writes land in the same microsecond.
	UpdateUserByID = `
		UPDATE users
		SET email = COALESCE($1, email),
		    name = COALESCE($2, name),
		    password = COALESCE($3, password),
		    updated_at = GREATEST(clock_timestamp(), updated_at + interval '1 microsecond')
		WHERE id = $4
		RETURNING id, email, name, password, created_at, updated_at
	`
	DeleteUserByID = `DELETE FROM users WHERE id = $1`
)
