package command

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/meetupaws/flight_route_manager/routes/internal/model"
	"github.com/meetupaws/flight_route_manager/routes/internal/repository"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type RoutesRepositoryMock struct {
	mock.Mock
}

func (m *RoutesRepositoryMock) Save(ctx context.Context, route model.Route) error {
	ret := m.Called(ctx, route)
	return ret.Error(0)
}

func (m *RoutesRepositoryMock) List(ctx context.Context) ([]model.Route, error) {
	ret := m.Called(ctx)
	return ret.Get(0).([]model.Route), ret.Error(1)
}

type EnqueuerMock struct {
	mock.Mock
}

func (m *EnqueuerMock) SendMsg(ctx context.Context, msg interface{}, queue string) error {
	ret := m.Called(ctx, msg, queue)
	return ret.Error(0)
}

var validRoute = model.Route{
	FlightID:    "F1",
	Date:        "2020-01-01",
	Time:        "10:00",
	Origin:      "SIN",
	Destination: "KUL",
	Capacity:    180,
}

func TestDispatcher_Dispatch(t *testing.T) {

	type mocks struct {
		routes   *RoutesRepositoryMock
		enqueuer *EnqueuerMock
	}

	type args struct {
		cmd   Command
		queue string
	}

	tests := []struct {
		name    string
		args    args
		want    model.CommandResult
		wantErr error
		mocks   mocks
		mocker  func(m mocks, a args)
	}{
		{
			name: "Save a valid route and publish a route added event",
			args: args{
				cmd:   AddRoute{Route: validRoute},
				queue: "routes",
			},
			want: model.CommandResult{
				Feedback: "Route added:\n" + validRoute.String(),
			},
			mocks: mocks{
				routes:   &RoutesRepositoryMock{},
				enqueuer: &EnqueuerMock{},
			},
			mocker: func(m mocks, a args) {
				m.routes.On("Save", mock.Anything, validRoute).Return(nil).Once()
				m.enqueuer.On("SendMsg", mock.Anything, model.QueueMsgRouteAdded{
					FlightID:    "F1",
					Date:        "2020-01-01",
					Time:        "10:00",
					Origin:      "SIN",
					Destination: "KUL",
					Capacity:    180,
				}, a.queue).Return(nil).Once()
			},
		},
		{
			name: "Keep the saved route when the event cannot be published",
			args: args{
				cmd:   AddRoute{Route: validRoute},
				queue: "routes",
			},
			want: model.CommandResult{
				Feedback: "Route added:\n" + validRoute.String(),
			},
			mocks: mocks{
				routes:   &RoutesRepositoryMock{},
				enqueuer: &EnqueuerMock{},
			},
			mocker: func(m mocks, a args) {
				m.routes.On("Save", mock.Anything, validRoute).Return(nil).Once()
				m.enqueuer.On("SendMsg", mock.Anything, mock.Anything, a.queue).Return(errors.New("sqs down")).Once()
			},
		},
		{
			name: "Do not publish when no queue is configured",
			args: args{
				cmd: AddRoute{Route: validRoute},
			},
			want: model.CommandResult{
				Feedback: "Route added:\n" + validRoute.String(),
			},
			mocks: mocks{
				routes:   &RoutesRepositoryMock{},
				enqueuer: &EnqueuerMock{},
			},
			mocker: func(m mocks, a args) {
				m.routes.On("Save", mock.Anything, validRoute).Return(nil).Once()
			},
		},
		{
			name: "Reject a route whose flight id is already stored",
			args: args{
				cmd: AddRoute{Route: validRoute},
			},
			wantErr: ErrDuplicateRoute,
			mocks: mocks{
				routes:   &RoutesRepositoryMock{},
				enqueuer: &EnqueuerMock{},
			},
			mocker: func(m mocks, a args) {
				m.routes.On("Save", mock.Anything, validRoute).Return(repository.ErrRouteExists).Once()
			},
		},
		{
			name: "List every stored route",
			args: args{
				cmd: ListRoutes{},
			},
			want: model.CommandResult{
				Feedback:   "There are 1 routes:",
				RoutesInfo: []string{validRoute.String()},
			},
			mocks: mocks{
				routes:   &RoutesRepositoryMock{},
				enqueuer: &EnqueuerMock{},
			},
			mocker: func(m mocks, a args) {
				m.routes.On("List", mock.Anything).Return([]model.Route{validRoute}, nil).Once()
			},
		},
		{
			name: "Tell the user when there are no routes",
			args: args{
				cmd: ListRoutes{},
			},
			want: model.CommandResult{
				Feedback: "There are no routes.",
			},
			mocks: mocks{
				routes:   &RoutesRepositoryMock{},
				enqueuer: &EnqueuerMock{},
			},
			mocker: func(m mocks, a args) {
				m.routes.On("List", mock.Anything).Return([]model.Route{}, nil).Once()
			},
		},
		{
			name: "Acknowledge the exit command without touching storage",
			args: args{
				cmd: Exit{},
			},
			want: model.CommandResult{
				Feedback: "Leaving flight route management.",
			},
			mocks: mocks{
				routes:   &RoutesRepositoryMock{},
				enqueuer: &EnqueuerMock{},
			},
			mocker: func(m mocks, a args) {},
		},
		{
			name: "Report an unrecognized command word",
			args: args{
				cmd: Unrecognized{Word: "foobar"},
			},
			want: model.CommandResult{
				Feedback: "Unknown command: foobar\nAvailable commands: add, list, exit",
			},
			mocks: mocks{
				routes:   &RoutesRepositoryMock{},
				enqueuer: &EnqueuerMock{},
			},
			mocker: func(m mocks, a args) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mocker(tt.mocks, tt.args)
			logger, _ := test.NewNullLogger()
			d := NewDispatcher(Env{
				Routes:   tt.mocks.routes,
				Enqueuer: tt.mocks.enqueuer,
				Queue:    tt.args.queue,
				Log:      logrus.NewEntry(logger),
			})

			got, err := d.Dispatch(context.Background(), tt.args.cmd)
			if tt.wantErr != nil {
				require.True(t, errors.Is(err, tt.wantErr), "got error %v, want %v", err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Dispatch() mismatch (-want,+got)\n%s", diff)
			}
			tt.mocks.routes.AssertExpectations(t)
			tt.mocks.enqueuer.AssertExpectations(t)
		})
	}
}

func TestAddRoute_Validation(t *testing.T) {
	routes := &RoutesRepositoryMock{}
	cmd := AddRoute{Route: model.Route{
		FlightID:    "0",
		Date:        "01-01-2020",
		Time:        "25:00",
		Origin:      "SIN",
		Destination: "SIN",
		Capacity:    -1,
	}}

	_, err := cmd.Execute(context.Background(), Env{Routes: routes})

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.Equal(t, []string{
		"date must be YYYY-MM-DD",
		"time must be HH:MM",
		"origin and destination must differ",
		"capacity must be positive",
	}, verr.Problems)
	routes.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestAddRoute_MissingFields(t *testing.T) {
	_, err := AddRoute{Route: model.Route{FlightID: "F1"}}.Execute(context.Background(), Env{Routes: &RoutesRepositoryMock{}})

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Problems, 5)
	require.Contains(t, err.Error(), "origin is required")
}

func TestCommand_IsExit(t *testing.T) {
	require.True(t, Exit{}.IsExit())
	require.False(t, AddRoute{}.IsExit())
	require.False(t, ListRoutes{}.IsExit())
	require.False(t, Unrecognized{}.IsExit())
}
