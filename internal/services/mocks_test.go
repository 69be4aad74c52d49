package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/jobvip/backend/internal/models"
	"github.com/jobvip/backend/internal/repositories"
)

// ---------------------------------------------------------------------
// Account repository fake
// ---------------------------------------------------------------------

type fakeAccountRepo struct {
	byEmail map[string]*models.Account
	byPhone map[string]*models.Account
	byID    map[uuid.UUID]*models.Account

	updatedPasswords map[string]string
	touched          []uuid.UUID
	deleted          []uuid.UUID

	failAll bool
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{
		byEmail:          map[string]*models.Account{},
		byPhone:          map[string]*models.Account{},
		byID:             map[uuid.UUID]*models.Account{},
		updatedPasswords: map[string]string{},
	}
}

func (f *fakeAccountRepo) add(a *models.Account) {
	f.byEmail[a.Email] = a
	f.byPhone[a.PhoneNumber] = a
	f.byID[a.ID] = a
}

var errFakeRepo = errors.New("repo failure")

func (f *fakeAccountRepo) Create(ctx context.Context, a *models.Account) error {
	if f.failAll {
		return errFakeRepo
	}
	f.add(a)
	return nil
}

func (f *fakeAccountRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	if f.failAll {
		return nil, errFakeRepo
	}
	return f.byID[id], nil
}

func (f *fakeAccountRepo) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	if f.failAll {
		return nil, errFakeRepo
	}
	return f.byEmail[email], nil
}

func (f *fakeAccountRepo) GetByPhoneNumber(ctx context.Context, phone string) (*models.Account, error) {
	if f.failAll {
		return nil, errFakeRepo
	}
	return f.byPhone[phone], nil
}

func (f *fakeAccountRepo) ListActive(ctx context.Context) ([]*models.Account, error) {
	var out []*models.Account
	for _, a := range f.byID {
		if a.Status == models.AccountStatusActive {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAccountRepo) UpdatePasswordByEmail(ctx context.Context, email, passwordHash string) error {
	f.updatedPasswords[email] = passwordHash
	if a, ok := f.byEmail[email]; ok {
		a.Password = passwordHash
	}
	return nil
}

func (f *fakeAccountRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status models.AccountStatus) error {
	if a, ok := f.byID[id]; ok {
		a.Status = status
	}
	return nil
}

func (f *fakeAccountRepo) TouchUpdatedAt(ctx context.Context, id uuid.UUID) error {
	f.touched = append(f.touched, id)
	return nil
}

func (f *fakeAccountRepo) Delete(ctx context.Context, id uuid.UUID) error {
	f.deleted = append(f.deleted, id)
	delete(f.byID, id)
	return nil
}

// ---------------------------------------------------------------------
// Notifier fake
// ---------------------------------------------------------------------

type fakeNotifier struct {
	sentEmails []string // codes sent by email
	sentSMS    []string
	lastEmail  string
	lastPhone  string
	failEmail  bool
	failSMS    bool
}

func (f *fakeNotifier) SendResetEmail(ctx context.Context, toEmail, code string) error {
	if f.failEmail {
		return errors.New("sendgrid down")
	}
	f.lastEmail = toEmail
	f.sentEmails = append(f.sentEmails, code)
	return nil
}

func (f *fakeNotifier) SendResetSMS(ctx context.Context, toPhone, code string) error {
	if f.failSMS {
		return errors.New("twilio down")
	}
	f.lastPhone = toPhone
	f.sentSMS = append(f.sentSMS, code)
	return nil
}

// ---------------------------------------------------------------------
// Job posting repository fake
// ---------------------------------------------------------------------

type fakeJobPostingRepo struct {
	jobs []*models.JobPosting

	lastFilter repositories.JobPostingFilter
	lastOffset int
	lastLimit  int
	searched   bool
}

func (f *fakeJobPostingRepo) Create(ctx context.Context, jp *models.JobPosting) error {
	jp.ID = int64(len(f.jobs) + 1)
	f.jobs = append(f.jobs, jp)
	return nil
}

func (f *fakeJobPostingRepo) GetByID(ctx context.Context, id int64) (*models.JobPosting, error) {
	for _, jp := range f.jobs {
		if jp.ID == id {
			return jp, nil
		}
	}
	return nil, nil
}

func (f *fakeJobPostingRepo) ListAll(ctx context.Context) ([]*models.JobPosting, error) {
	return f.jobs, nil
}

func (f *fakeJobPostingRepo) Search(ctx context.Context, filter repositories.JobPostingFilter, offset, limit int) ([]*models.JobPosting, int, error) {
	f.searched = true
	f.lastFilter = filter
	f.lastOffset = offset
	f.lastLimit = limit

	total := len(f.jobs)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return f.jobs[offset:end], total, nil
}

// ---------------------------------------------------------------------
// Catalog repository fakes
// ---------------------------------------------------------------------

type fakeCompanyRepo struct {
	companies map[int64]*models.Company
	fail      bool
}

func (f *fakeCompanyRepo) GetByID(ctx context.Context, id int64) (*models.Company, error) {
	if f.fail {
		return nil, errFakeRepo
	}
	return f.companies[id], nil
}

func (f *fakeCompanyRepo) ListByIDs(ctx context.Context, ids []int64) ([]*models.Company, error) {
	if f.fail {
		return nil, errFakeRepo
	}
	var out []*models.Company
	for _, id := range ids {
		if c, ok := f.companies[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

type fakeAddressRepo struct {
	addresses []*models.Address
	fail      bool
}

func (f *fakeAddressRepo) FirstByCompanyID(ctx context.Context, companyID int64) (*models.Address, error) {
	if f.fail {
		return nil, errFakeRepo
	}
	for _, a := range f.addresses {
		if a.CompanyID == companyID {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeAddressRepo) ListByCompanyIDs(ctx context.Context, companyIDs []int64) ([]*models.Address, error) {
	if f.fail {
		return nil, errFakeRepo
	}
	var out []*models.Address
	for _, a := range f.addresses {
		for _, id := range companyIDs {
			if a.CompanyID == id {
				out = append(out, a)
			}
		}
	}
	return out, nil
}

type fakeIndustryRepo struct {
	industries        map[int64]string        // id -> name
	namesToIDs        map[string]int64        // name -> id
	companyIndustries []models.CompanyIndustry
	jobIndustries     map[int64][]string // job posting id -> names
	fail              bool
}

func (f *fakeIndustryRepo) ListByNames(ctx context.Context, names []string) ([]*models.Industry, error) {
	if f.fail {
		return nil, errFakeRepo
	}
	var out []*models.Industry
	for _, name := range names {
		if id, ok := f.namesToIDs[name]; ok {
			out = append(out, &models.Industry{ID: id, Name: name})
		}
	}
	return out, nil
}

func (f *fakeIndustryRepo) ListByIDs(ctx context.Context, ids []int64) ([]*models.Industry, error) {
	if f.fail {
		return nil, errFakeRepo
	}
	var out []*models.Industry
	for _, id := range ids {
		if name, ok := f.industries[id]; ok {
			out = append(out, &models.Industry{ID: id, Name: name})
		}
	}
	return out, nil
}

func (f *fakeIndustryRepo) ListDistinctNames(ctx context.Context) ([]string, error) {
	var out []string
	for _, name := range f.industries {
		out = append(out, name)
	}
	return out, nil
}

func (f *fakeIndustryRepo) ListCompanyIDsByIndustryIDs(ctx context.Context, industryIDs []int64) ([]int64, error) {
	if f.fail {
		return nil, errFakeRepo
	}
	var out []int64
	seen := map[int64]struct{}{}
	for _, ci := range f.companyIndustries {
		for _, id := range industryIDs {
			if ci.IndustryID == id {
				if _, ok := seen[ci.CompanyID]; !ok {
					seen[ci.CompanyID] = struct{}{}
					out = append(out, ci.CompanyID)
				}
			}
		}
	}
	return out, nil
}

func (f *fakeIndustryRepo) ListCompanyIndustries(ctx context.Context, companyIDs []int64) ([]models.CompanyIndustry, error) {
	if f.fail {
		return nil, errFakeRepo
	}
	var out []models.CompanyIndustry
	for _, ci := range f.companyIndustries {
		for _, id := range companyIDs {
			if ci.CompanyID == id {
				out = append(out, ci)
			}
		}
	}
	return out, nil
}

func (f *fakeIndustryRepo) ListNamesByJobPostingID(ctx context.Context, jobPostingID int64) ([]string, error) {
	if f.fail {
		return nil, errFakeRepo
	}
	return f.jobIndustries[jobPostingID], nil
}

type fakeWorkTypeRepo struct {
	byNames   map[string][]int64 // work type name -> job posting ids
	workTypes []models.WorkType
	fail      bool
}

func (f *fakeWorkTypeRepo) ListJobPostingIDsByNames(ctx context.Context, names []string) ([]int64, error) {
	if f.fail {
		return nil, errFakeRepo
	}
	var out []int64
	seen := map[int64]struct{}{}
	for _, name := range names {
		for _, id := range f.byNames[name] {
			if _, ok := seen[id]; !ok {
				seen[id] = struct{}{}
				out = append(out, id)
			}
		}
	}
	return out, nil
}

func (f *fakeWorkTypeRepo) ListByJobPostingIDs(ctx context.Context, jobPostingIDs []int64) ([]models.WorkType, error) {
	if f.fail {
		return nil, errFakeRepo
	}
	var out []models.WorkType
	for _, wt := range f.workTypes {
		for _, id := range jobPostingIDs {
			if wt.JobPostingID == id {
				out = append(out, wt)
			}
		}
	}
	return out, nil
}

func (f *fakeWorkTypeRepo) ListNamesByJobPostingID(ctx context.Context, jobPostingID int64) ([]string, error) {
	if f.fail {
		return nil, errFakeRepo
	}
	var out []string
	for _, wt := range f.workTypes {
		if wt.JobPostingID == jobPostingID {
			out = append(out, wt.Name)
		}
	}
	return out, nil
}

func (f *fakeWorkTypeRepo) ListDistinctNames(ctx context.Context) ([]string, error) {
	var out []string
	seen := map[string]struct{}{}
	for _, wt := range f.workTypes {
		if _, ok := seen[wt.Name]; !ok {
			seen[wt.Name] = struct{}{}
			out = append(out, wt.Name)
		}
	}
	return out, nil
}

type fakeSkillRepo struct {
	byJobPosting map[int64][]string
}

func (f *fakeSkillRepo) ListNamesByJobPostingID(ctx context.Context, jobPostingID int64) ([]string, error) {
	return f.byJobPosting[jobPostingID], nil
}
