package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/ferdian3456/jobboard/internal/constant"
	"github.com/ferdian3456/jobboard/internal/model"
	"github.com/ferdian3456/jobboard/internal/repository"
	"github.com/ferdian3456/jobboard/internal/storage"
)

type fakeUserStore struct {
	mu        sync.Mutex
	users     map[int64]*model.User
	findErr   error
	updateErr error
}

func newFakeUserStore(users ...model.User) *fakeUserStore {
	store := &fakeUserStore{users: map[int64]*model.User{}}
	for i := range users {
		user := users[i]
		store.users[user.Id] = &user
	}
	return store
}

func (f *fakeUserStore) FindById(ctx context.Context, id int64) (model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.findErr != nil {
		return model.User{}, f.findErr
	}

	user, ok := f.users[id]
	if !ok {
		return model.User{}, &model.ValidationError{
			Code:    constant.ERR_NOT_FOUND_ERROR,
			Message: "User not found",
			Param:   "userId",
		}
	}

	return *user, nil
}

func (f *fakeUserStore) UpdateImage(ctx context.Context, q repository.Querier, id int64, image string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.updateErr != nil {
		return f.updateErr
	}

	user, ok := f.users[id]
	if !ok {
		return &model.ValidationError{Code: constant.ERR_NOT_FOUND_ERROR, Message: "User not found", Param: "userId"}
	}

	user.Image = &image
	return nil
}

func (f *fakeUserStore) image(id int64) *string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.users[id].Image
}

// fakeTxManager restores the user rows it snapshotted when fn or the commit
// fails.
type fakeTxManager struct {
	users     *fakeUserStore
	commitErr error
	commits   int
	rollbacks int
}

func (f *fakeTxManager) WithinTransaction(ctx context.Context, fn func(q repository.Querier) error) error {
	snapshot := map[int64]*string{}
	f.users.mu.Lock()
	for id, user := range f.users.users {
		snapshot[id] = user.Image
	}
	f.users.mu.Unlock()

	err := fn(nil)
	if err == nil && f.commitErr != nil {
		err = f.commitErr
	}

	if err != nil {
		f.rollbacks++
		f.users.mu.Lock()
		for id, image := range snapshot {
			f.users.users[id].Image = image
		}
		f.users.mu.Unlock()
		return err
	}

	f.commits++
	return nil
}

type fakeBlobStore struct {
	mu           sync.Mutex
	objects      map[string][]byte
	contentTypes map[string]string
	ops          []string
	putErr       map[string]error
	storeErr     error
	deleteErr    error
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{
		objects:      map[string][]byte{},
		contentTypes: map[string]string{},
		putErr:       map[string]error{},
	}
}

func (f *fakeBlobStore) Delete(ctx context.Context, visibility storage.Visibility, keys ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.ops = append(f.ops, "delete:"+strings.Join(keys, ","))
	if f.deleteErr != nil {
		return f.deleteErr
	}

	for _, key := range keys {
		delete(f.objects, key)
	}
	return nil
}

func (f *fakeBlobStore) StoreAs(ctx context.Context, visibility storage.Visibility, namespace string, filename string, data []byte, contentType string) (string, error) {
	key := namespace + "/" + filename

	f.mu.Lock()
	f.ops = append(f.ops, "store:"+key)
	storeErr := f.storeErr
	f.mu.Unlock()

	if storeErr != nil {
		return "", storeErr
	}

	return key, f.write(key, data, contentType)
}

func (f *fakeBlobStore) Put(ctx context.Context, visibility storage.Visibility, key string, data []byte, contentType string) error {
	f.mu.Lock()
	f.ops = append(f.ops, "put:"+key)
	putErr := f.putErr[key]
	f.mu.Unlock()

	if putErr != nil {
		return putErr
	}

	return f.write(key, data, contentType)
}

func (f *fakeBlobStore) write(key string, data []byte, contentType string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.objects[key] = append([]byte(nil), data...)
	f.contentTypes[key] = contentType
	return nil
}

func (f *fakeBlobStore) URL(visibility storage.Visibility, key string) string {
	return "http://cdn.test/" + string(visibility) + "/" + key
}

func (f *fakeBlobStore) has(key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.objects[key]
	return ok
}

type fakeLocker struct {
	err      error
	acquired []string
	released int
}

func (f *fakeLocker) Acquire(ctx context.Context, key string) (func(context.Context) error, error) {
	if f.err != nil {
		return nil, f.err
	}

	f.acquired = append(f.acquired, key)
	return func(context.Context) error {
		f.released++
		return nil
	}, nil
}

var errBoom = errors.New("boom")

type fakeCategoryStore struct {
	categories map[int64]bool
	jobTypes   map[int64]bool
}

func newFakeCategoryStore() *fakeCategoryStore {
	return &fakeCategoryStore{
		categories: map[int64]bool{1: true, 2: false},
		jobTypes:   map[int64]bool{1: true},
	}
}

func (f *fakeCategoryStore) GetActiveCategories(ctx context.Context) ([]model.Category, error) {
	return []model.Category{{Id: 1, Name: "Engineering"}}, nil
}

func (f *fakeCategoryStore) GetActiveJobTypes(ctx context.Context) ([]model.JobType, error) {
	return []model.JobType{{Id: 1, Name: "Full Time"}}, nil
}

func (f *fakeCategoryStore) CheckCategoryActive(ctx context.Context, id int64) (bool, error) {
	return f.categories[id], nil
}

func (f *fakeCategoryStore) CheckJobTypeActive(ctx context.Context, id int64) (bool, error) {
	return f.jobTypes[id], nil
}

// fakeJobStore applies the same owner scoping as the SQL queries.
type fakeJobStore struct {
	jobs   map[int64]*model.Job
	nextId int64
}

func newFakeJobStore(jobs ...model.Job) *fakeJobStore {
	store := &fakeJobStore{jobs: map[int64]*model.Job{}, nextId: 100}
	for i := range jobs {
		job := jobs[i]
		store.jobs[job.Id] = &job
	}
	return store
}

func jobNotFound() error {
	return &model.ValidationError{Code: constant.ERR_NOT_FOUND_ERROR, Message: "Job not found", Param: "jobId"}
}

func (f *fakeJobStore) CreateJob(ctx context.Context, job model.Job) (int64, error) {
	f.nextId++
	job.Id = f.nextId
	f.jobs[job.Id] = &job
	return job.Id, nil
}

func (f *fakeJobStore) CountUserJobs(ctx context.Context, userId int64) (int, error) {
	total := 0
	for _, job := range f.jobs {
		if job.UserId == userId {
			total++
		}
	}
	return total, nil
}

func (f *fakeJobStore) GetUserJobs(ctx context.Context, userId int64, limit int, offset int) ([]model.MyJobResponse, error) {
	jobs := []model.MyJobResponse{}
	for _, job := range f.jobs {
		if job.UserId == userId {
			jobs = append(jobs, model.MyJobResponse{Id: job.Id, Title: job.Title})
		}
	}
	return jobs, nil
}

func (f *fakeJobStore) GetUserJob(ctx context.Context, id int64, userId int64) (model.Job, error) {
	job, ok := f.jobs[id]
	if !ok || job.UserId != userId {
		return model.Job{}, jobNotFound()
	}
	return *job, nil
}

func (f *fakeJobStore) GetActiveJob(ctx context.Context, id int64) (model.Job, error) {
	job, ok := f.jobs[id]
	if !ok || job.Status != model.JobStatusActive {
		return model.Job{}, jobNotFound()
	}
	return *job, nil
}

func (f *fakeJobStore) UpdateJob(ctx context.Context, job model.Job) error {
	current, ok := f.jobs[job.Id]
	if !ok || current.UserId != job.UserId {
		return jobNotFound()
	}
	*current = job
	return nil
}

func (f *fakeJobStore) DeleteUserJob(ctx context.Context, id int64, userId int64) (int64, error) {
	job, ok := f.jobs[id]
	if !ok || job.UserId != userId {
		return 0, nil
	}
	delete(f.jobs, id)
	return 1, nil
}

type jobUserPair struct {
	jobId  int64
	userId int64
}

// fakeApplicationStore keeps applications and saved jobs keyed by (job, user)
// and rejects a second insert of the same pair like the unique constraint.
type fakeApplicationStore struct {
	rows map[jobUserPair]int64
	// hideExisting makes the pre-insert check miss rows, as when two requests
	// race past it.
	hideExisting bool
	duplicateMsg string
	nextId       int64
}

func newFakeApplicationStore(duplicateMsg string) *fakeApplicationStore {
	return &fakeApplicationStore{rows: map[jobUserPair]int64{}, duplicateMsg: duplicateMsg}
}

func (f *fakeApplicationStore) exists(jobId int64, userId int64) (bool, error) {
	if f.hideExisting {
		return false, nil
	}
	_, ok := f.rows[jobUserPair{jobId, userId}]
	return ok, nil
}

func (f *fakeApplicationStore) insert(jobId int64, userId int64) (int64, error) {
	key := jobUserPair{jobId, userId}
	if _, ok := f.rows[key]; ok {
		return 0, &model.ValidationError{Code: constant.ERR_VALIDATION_CODE, Message: f.duplicateMsg, Param: "jobId"}
	}
	f.nextId++
	f.rows[key] = f.nextId
	return f.nextId, nil
}

func (f *fakeApplicationStore) count(userId int64) int {
	total := 0
	for key := range f.rows {
		if key.userId == userId {
			total++
		}
	}
	return total
}

func (f *fakeApplicationStore) remove(id int64, userId int64) int64 {
	for key, rowId := range f.rows {
		if rowId == id && key.userId == userId {
			delete(f.rows, key)
			return 1
		}
	}
	return 0
}

func (f *fakeApplicationStore) CheckApplied(ctx context.Context, jobId int64, userId int64) (bool, error) {
	return f.exists(jobId, userId)
}

func (f *fakeApplicationStore) CreateApplication(ctx context.Context, application model.JobApplication) (int64, error) {
	return f.insert(application.JobId, application.UserId)
}

func (f *fakeApplicationStore) CountUserApplications(ctx context.Context, userId int64) (int, error) {
	return f.count(userId), nil
}

func (f *fakeApplicationStore) GetUserApplications(ctx context.Context, userId int64, limit int, offset int) ([]model.JobApplicationResponse, error) {
	applications := []model.JobApplicationResponse{}
	for key, id := range f.rows {
		if key.userId == userId {
			applications = append(applications, model.JobApplicationResponse{Id: id, JobId: key.jobId})
		}
	}
	return applications, nil
}

func (f *fakeApplicationStore) DeleteUserApplication(ctx context.Context, id int64, userId int64) (int64, error) {
	return f.remove(id, userId), nil
}

type fakeSavedJobStore struct {
	*fakeApplicationStore
}

func (f fakeSavedJobStore) CheckSaved(ctx context.Context, jobId int64, userId int64) (bool, error) {
	return f.exists(jobId, userId)
}

func (f fakeSavedJobStore) CreateSavedJob(ctx context.Context, savedJob model.SavedJob) (int64, error) {
	return f.insert(savedJob.JobId, savedJob.UserId)
}

func (f fakeSavedJobStore) CountUserSavedJobs(ctx context.Context, userId int64) (int, error) {
	return f.count(userId), nil
}

func (f fakeSavedJobStore) GetUserSavedJobs(ctx context.Context, userId int64, limit int, offset int) ([]model.SavedJobResponse, error) {
	return []model.SavedJobResponse{}, nil
}

func (f fakeSavedJobStore) DeleteUserSavedJob(ctx context.Context, id int64, userId int64) (int64, error) {
	return f.remove(id, userId), nil
}

type sentEmail struct {
	to      string
	subject string
	body    string
}

type fakeMailer struct {
	sent []sentEmail
	err  error
}

func (f *fakeMailer) Send(receiverEmail string, subject string, body string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentEmail{to: receiverEmail, subject: subject, body: body})
	return nil
}
