package api

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/fieldopshq/fieldops/internal/models"
)

func TestAddTaskRequiresTitleAndExistingJob(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	admin := env.createTenant(t, "Acme Plumbing", "acme_admin")
	cookie := env.authCookie(t, admin)
	job := seedJob(t, env, admin.CompanyID, "Jane")

	resp := env.postForm(t, "/jobs/"+itoa(job.ID)+"/tasks/add", cookie, url.Values{"title": {"   "}})
	wantStatus(t, resp, http.StatusBadRequest)

	resp = env.postForm(t, "/jobs/999/tasks/add", cookie, url.Values{"title": {"Order parts"}})
	wantStatus(t, resp, http.StatusNotFound)

	resp = env.postForm(t, "/jobs/"+itoa(job.ID)+"/tasks/add", cookie, url.Values{
		"title":       {"  Order parts  "},
		"due_date":    {"2024-05-02"},
		"assigned_to": {"Mike"},
	})
	wantRedirect(t, resp, "/")

	tasks, err := env.repos.Tasks.ListNewestFirst(admin.CompanyID)
	if err != nil {
		t.Fatalf("list tasks: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("expected one task, got %d", len(tasks))
	}
	task := tasks[0]
	if task.Title != "Order parts" {
		t.Fatalf("expected trimmed title, got %q", task.Title)
	}
	if task.Status != models.TaskStatusTodo {
		t.Fatalf("expected fresh task to be %q, got %q", models.TaskStatusTodo, task.Status)
	}
	if task.DueDate == nil || *task.DueDate != "2024-05-02" {
		t.Fatalf("expected due date 2024-05-02, got %v", task.DueDate)
	}
	if task.AssignedTo == nil || *task.AssignedTo != "Mike" {
		t.Fatalf("expected assignee Mike, got %v", task.AssignedTo)
	}
}

func TestToggleTaskRoundTrips(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	admin := env.createTenant(t, "Acme Plumbing", "acme_admin")
	cookie := env.authCookie(t, admin)
	job := seedJob(t, env, admin.CompanyID, "Jane")
	task := seedTask(t, env, admin.CompanyID, job.ID, "Order parts")

	for _, want := range []string{models.TaskStatusDone, models.TaskStatusTodo, models.TaskStatusDone} {
		resp := env.postForm(t, "/tasks/"+itoa(task.ID)+"/toggle", cookie, url.Values{})
		wantRedirect(t, resp, "/")

		stored, err := env.repos.Tasks.FindByID(admin.CompanyID, task.ID)
		if err != nil {
			t.Fatalf("reload task: %v", err)
		}
		if stored.Status != want {
			t.Fatalf("expected task status %q after toggle, got %q", want, stored.Status)
		}
	}
}

func TestUpdateJobStatusEnforcesAllowList(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	admin := env.createTenant(t, "Acme Plumbing", "acme_admin")
	cookie := env.authCookie(t, admin)
	job := seedJob(t, env, admin.CompanyID, "Jane")

	resp := env.postForm(t, "/update_job_status/"+itoa(job.ID), cookie, url.Values{"status": {"Done"}})
	wantStatus(t, resp, http.StatusBadRequest)

	stored, err := env.repos.Jobs.FindByID(admin.CompanyID, job.ID)
	if err != nil {
		t.Fatalf("reload job: %v", err)
	}
	if stored.Status != models.JobStatusScheduled {
		t.Fatalf("expected status to stay %q, got %q", models.JobStatusScheduled, stored.Status)
	}

	resp = env.postForm(t, "/update_job_status/"+itoa(job.ID), cookie, url.Values{"status": {models.JobStatusInProgress}})
	wantRedirect(t, resp, "/")

	stored, err = env.repos.Jobs.FindByID(admin.CompanyID, job.ID)
	if err != nil {
		t.Fatalf("reload job: %v", err)
	}
	if stored.Status != models.JobStatusInProgress {
		t.Fatalf("expected status %q, got %q", models.JobStatusInProgress, stored.Status)
	}
}
