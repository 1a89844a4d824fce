package internal

import (
	"net"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/ory/dockertest"
	"github.com/pkg/errors"
)

var ErrPortNotOpen = errors.New("port_not_open")

// WaitForPort dials address once per second until it answers or attempts
// run out.
func WaitForPort(network, address string, attempts int) error {
	for i := 0; i < attempts; i++ {
		conn, err := net.DialTimeout(network, address, time.Second)
		if err == nil {
			conn.Close()
			return nil
		}
		time.Sleep(time.Second)
	}
	return errors.Wrapf(ErrPortNotOpen, "%v %v", network, address)
}

// DynamoDBLocal starts amazon/dynamodb-local in docker and returns a client
// pointed at it together with the function that removes the container.
// Tests using it are skipped in -short mode.
func DynamoDBLocal(t *testing.T) (func(), *dynamodb.DynamoDB) {
	t.Helper()
	if testing.Short() {
		t.Skip("dynamodb-local needs docker, skipped in short mode")
	}

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("Could not connect to docker: %s\n", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository:   "amazon/dynamodb-local",
		Tag:          "latest",
		ExposedPorts: []string{"8000"},
	})
	if err != nil {
		t.Fatalf("Could not start resource: %s\n", err)
	}

	closer := func() {
		if err := pool.Purge(resource); err != nil {
			t.Fatal(err)
		}
	}

	hostPort := resource.GetHostPort("8000/tcp")
	if err := WaitForPort("tcp", hostPort, 10); err != nil {
		closer()
		t.Fatalf("Could not connect to resource: %v\n", err)
	}

	sess, err := session.NewSession(&aws.Config{
		Region:      aws.String("us-east-1"),
		Endpoint:    aws.String("http://" + hostPort),
		Credentials: credentials.NewStaticCredentials("x", "x", ""),
	})
	if err != nil {
		closer()
		t.Fatalf("Could not create aws session: %v\n", err)
	}

	return closer, dynamodb.New(sess)
}
