package job

import (
	"testing"

	"github.com/stretchr/testify/require"

	jobapimodels "recruitment-portal-backend/models/api/job"
	dbmodels "recruitment-portal-backend/models/db"
)

type fakeJobStore struct {
	recs   map[uint]dbmodels.Job
	nextID uint
}

func newFakeJobStore() *fakeJobStore {
	return &fakeJobStore{recs: map[uint]dbmodels.Job{}}
}

func (s *fakeJobStore) Create(rec dbmodels.Job) (dbmodels.Job, error) {
	s.nextID++
	rec.ID = s.nextID
	s.recs[rec.ID] = rec
	return rec, nil
}

func (s *fakeJobStore) Update(id uint, rec dbmodels.Job) error {
	existing, ok := s.recs[id]
	if !ok {
		return nil
	}
	rec.ID = id
	rec.CreatedAt = existing.CreatedAt
	s.recs[id] = rec
	return nil
}

func (s *fakeJobStore) GetByID(id uint) (*dbmodels.Job, error) {
	rec, ok := s.recs[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (s *fakeJobStore) List(page, limit int) ([]dbmodels.Job, int64, error) {
	list := []dbmodels.Job{}
	for _, rec := range s.recs {
		list = append(list, rec)
	}
	total := int64(len(list))
	start := (page - 1) * limit
	if start > len(list) {
		start = len(list)
	}
	end := start + limit
	if end > len(list) {
		end = len(list)
	}
	return list[start:end], total, nil
}

func newTestInstance() (Provider, *fakeJobStore) {
	store := newFakeJobStore()
	return impl{store: store}, store
}

func postingData(title string) jobapimodels.JobData {
	return jobapimodels.JobData{
		Title:               title,
		Department:          "Engineering",
		ExperienceMin:       1,
		ExperienceMax:       4,
		SalaryMin:           800000,
		SalaryMax:           1400000,
		JobLocation:         "Pune",
		Openings:            2,
		ApplicationDeadline: "2026-10-01",
	}
}

func TestJobCRUD(t *testing.T) {
	instance, _ := newTestInstance()

	t.Run("create and fetch", func(t *testing.T) {
		created, err := instance.Create(postingData("Backend Engineer"))
		require.NoError(t, err)
		require.NotZero(t, created.ID)

		fetched, err := instance.GetByID(created.ID)
		require.NoError(t, err)
		require.Equal(t, created.JobData, fetched.JobData)
	})

	t.Run("update replaces the posting", func(t *testing.T) {
		created, err := instance.Create(postingData("SRE"))
		require.NoError(t, err)

		changed := postingData("Senior SRE")
		changed.Openings = 1
		updated, err := instance.Update(created.ID, changed)
		require.NoError(t, err)
		require.Equal(t, "Senior SRE", updated.Title)
		require.Equal(t, 1, updated.Openings)
	})

	t.Run("missing posting", func(t *testing.T) {
		_, err := instance.GetByID(999)
		require.ErrorIs(t, err, ErrNotFound)
		_, err = instance.Update(999, postingData("Ghost"))
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestJobListPagination(t *testing.T) {
	instance, _ := newTestInstance()
	for i := 0; i < 5; i++ {
		_, err := instance.Create(postingData("Role"))
		require.NoError(t, err)
	}

	result, err := instance.List(2, 2)
	require.NoError(t, err)
	require.Equal(t, int64(5), result.Total)
	require.Equal(t, 2, result.Page)
	require.Equal(t, 2, result.Limit)
	require.Len(t, result.Data, 2)
}
