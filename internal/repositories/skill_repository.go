package repositories

import "context"

type SkillRepository interface {
	ListNamesByJobPostingID(ctx context.Context, jobPostingID int64) ([]string, error)
}

type skillRepo struct{ db DB }

func NewSkillRepository(db DB) SkillRepository { return &skillRepo{db: db} }

func (r *skillRepo) ListNamesByJobPostingID(ctx context.Context, jobPostingID int64) ([]string, error) {
	rows, err := r.db.Query(ctx, `
		SELECT s.name
		FROM job_posting_skill jps
		JOIN skill s ON s.skill_id = jps.skill_id
		WHERE jps.job_posting_id = $1
		ORDER BY s.name
	`, jobPostingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	return out, rows.Err()
}
